package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Fit — nonlinear least squares with uncertainty estimates.
//
// Description:
//
//	Fit minimizes the residual sum of squares of model over the
//	(x, y) samples, starting from the caller's parameter guess, and
//	returns the solution with one standard error per parameter.
//
// Algorithm outline:
//  1. Validate the samples and the guess.
//  2. Build the RSS objective Σ (model(xᵢ, p) - yᵢ)².
//  3. Minimize from the guess with a Nelder-Mead simplex, declaring
//     convergence when the objective stops improving by more than Tol.
//  4. At the solution, differentiate the residual vector numerically
//     and estimate the covariance as s²(JᵀJ)⁻¹, s² = RSS/(n-p).
//
// The optimizer is run once; a fit that stops on its iteration cap or
// an internal failure surfaces as ErrNoConverge, never as a retry.
//
// Errors:
//   - ErrMismatchedLen – len(x) != len(y).
//   - ErrBadGuess      – guess is empty or contains NaN/Inf.
//   - ErrTooFewPoints  – fewer samples than parameters.
//   - ErrNoConverge    – the minimizer failed or hit its budget.
func Fit(x, y []float64, model Model, guess []float64, opts ...FitOption) (*FitResult, error) {
	// 1) Validate input.
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrMismatchedLen, len(x), len(y))
	}
	if len(guess) == 0 {
		return nil, ErrBadGuess
	}
	for _, g := range guess {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, fmt.Errorf("%w: non-finite entry %v", ErrBadGuess, g)
		}
	}
	if len(x) < len(guess) {
		return nil, fmt.Errorf("%w: %d samples for %d parameters", ErrTooFewPoints, len(x), len(guess))
	}

	o := DefaultFitOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2) Residual sum of squares as the objective.
	rss := func(p []float64) float64 {
		var sum float64
		for i := range x {
			r := model(x[i], p) - y[i]
			sum += r * r
		}
		return sum
	}

	// 3) Minimize from the caller's guess. The simplex needs no
	// gradients, so models are free to be non-smooth in places.
	settings := &optimize.Settings{
		MajorIterations: o.MaxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.Tol,
			Iterations: 50,
		},
	}
	start := append([]float64(nil), guess...)
	res, err := optimize.Minimize(optimize.Problem{Func: rss}, start, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConverge, err)
	}
	switch res.Status {
	case optimize.Failure, optimize.IterationLimit, optimize.NotTerminated:
		return nil, fmt.Errorf("%w: optimizer status %s", ErrNoConverge, res.Status)
	}

	// 4) Covariance and per-parameter errors at the solution.
	return newResult(x, y, model, res.X)
}
