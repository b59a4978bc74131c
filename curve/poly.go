package curve

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/sdat2/sithom/unc"
)

// FitPoly fits one of the built-in polynomial kinds by linear least
// squares. The problem is linear in its coefficients, so no guess and
// no iteration are needed: the Vandermonde design matrix is solved
// directly by QR, which recovers exact polynomial data to rounding
// error. Coefficients come back highest degree first.
//
// Errors:
//   - ErrUnknownKind   – kind outside the built-in family.
//   - ErrMismatchedLen – len(x) != len(y).
//   - ErrTooFewPoints  – fewer samples than coefficients.
//   - ErrSingular      – the design matrix has no least-squares solution.
func FitPoly(x, y []float64, kind PolyKind) (*FitResult, error) {
	// 1) Validate input.
	terms := kind.Terms()
	if terms == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrMismatchedLen, len(x), len(y))
	}
	if len(x) < terms {
		return nil, fmt.Errorf("%w: %d samples for %d coefficients", ErrTooFewPoints, len(x), terms)
	}

	// 2) Vandermonde design matrix, highest degree in the first column.
	// Lin0 has no constant column: its lowest power is x, not 1.
	n := len(x)
	a := mat.NewDense(n, terms, nil)
	for i, xv := range x {
		v := 1.0
		if kind == Lin0 {
			v = xv
		}
		for j := terms - 1; j >= 0; j-- {
			a.Set(i, j, v)
			v *= xv
		}
	}

	// 3) Least squares via QR.
	var qr mat.QR
	qr.Factorize(a)
	b := mat.NewDense(n, 1, append([]float64(nil), y...))
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}
	popt := make([]float64, terms)
	for j := range popt {
		popt[j] = sol.At(j, 0)
	}

	// 4) Covariance and per-coefficient errors.
	return newResult(x, y, kind.Model(), popt)
}

// PolyLabel renders a legend label for a fitted polynomial, e.g.
// "y = $\left( 2.00 \pm 0.05 \right)$x + $\left( 1.0 \pm 0.2 \right)$".
// Coefficients must be ordered highest degree first, as FitPoly
// returns them.
func PolyLabel(kind PolyKind, params []unc.Value) (string, error) {
	terms := kind.Terms()
	if terms == 0 {
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if len(params) != terms {
		return "", fmt.Errorf("%w: %d coefficients for %s", ErrMismatchedLen, len(params), kind)
	}

	var sb strings.Builder
	sb.WriteString("y = ")
	for j, p := range params {
		if j > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(p.Tex(unc.WithBracket()))

		pow := terms - 1 - j
		if kind == Lin0 {
			pow = terms - j
		}
		switch {
		case pow == 1:
			sb.WriteString("x")
		case pow > 1:
			fmt.Fprintf(&sb, "x$^{%d}$", pow)
		}
	}
	return sb.String(), nil
}
