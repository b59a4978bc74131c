package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/sdat2/sithom/unc"
)

// FitResult is an immutable least-squares solution: the fitted
// parameters with their standard errors, the covariance they were
// derived from, and the goodness-of-fit scalar.
type FitResult struct {
	// Params holds the fitted coefficients, each paired with the
	// square root of its covariance diagonal entry.
	Params []unc.Value

	// Cov is the parameter covariance s²(JᵀJ)⁻¹, or nil when the fit
	// is unidentifiable (Dof <= 0 or singular JᵀJ).
	Cov *mat.SymDense

	// RSS is the residual sum of squares at the solution.
	RSS float64

	// Dof is the residual degrees of freedom, len(x) - len(params).
	Dof int

	model Model
	popt  []float64
}

// newResult finishes a fit: it evaluates the residuals at popt,
// differentiates them numerically, and turns s²(JᵀJ)⁻¹ into
// per-parameter errors. Mirrors the covariance contract of classic
// nonlinear least-squares solvers, including +Inf errors when the
// covariance cannot be estimated.
func newResult(x, y []float64, model Model, popt []float64) (*FitResult, error) {
	n, np := len(x), len(popt)

	// 1) Residual sum of squares at the solution.
	var rss float64
	for i := range x {
		r := model(x[i], popt) - y[i]
		rss += r * r
	}
	dof := n - np

	// 2) Residual Jacobian at the solution.
	jac := mat.NewDense(n, np, nil)
	fd.Jacobian(jac, func(dst, p []float64) {
		for i := range x {
			dst[i] = model(x[i], p) - y[i]
		}
	}, popt, &fd.JacobianSettings{Formula: fd.Central})

	// 3) Covariance and per-parameter errors.
	cov, ok := covariance(jac, rss, dof)
	params := make([]unc.Value, np)
	for i := range params {
		sigma := math.Inf(1)
		if ok {
			sigma = math.Sqrt(cov.At(i, i))
		}
		params[i] = unc.New(popt[i], sigma)
	}

	return &FitResult{
		Params: params,
		Cov:    cov,
		RSS:    rss,
		Dof:    dof,
		model:  model,
		popt:   append([]float64(nil), popt...),
	}, nil
}

// covariance estimates s²(JᵀJ)⁻¹ with s² = RSS/Dof. ok is false for an
// unidentifiable fit: non-positive degrees of freedom or an exactly
// singular JᵀJ. An ill-conditioned but invertible JᵀJ is kept, the
// condition number is the caller's concern.
func covariance(jac *mat.Dense, rss float64, dof int) (cov *mat.SymDense, ok bool) {
	if dof <= 0 {
		return nil, false
	}
	_, np := jac.Dims()

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, false
		}
	}

	s2 := rss / float64(dof)
	cov = mat.NewSymDense(np, nil)
	for i := 0; i < np; i++ {
		for j := i; j < np; j++ {
			cov.SetSym(i, j, s2*0.5*(inv.At(i, j)+inv.At(j, i)))
		}
	}
	return cov, true
}

// Eval evaluates the fitted curve at x, propagating the parameter
// covariance through the model gradient to a 1σ prediction error.
// A fit without a covariance evaluates with +Inf error.
func (r *FitResult) Eval(x float64) unc.Value {
	nom := r.model(x, r.popt)
	if r.Cov == nil {
		return unc.New(nom, math.Inf(1))
	}

	np := len(r.popt)
	grad := make([]float64, np)
	fd.Gradient(grad, func(p []float64) float64 { return r.model(x, p) }, r.popt, nil)

	g := mat.NewVecDense(np, grad)
	variance := mat.Inner(g, r.Cov, g)
	if variance < 0 {
		variance = 0
	}
	return unc.New(nom, math.Sqrt(variance))
}

// EvalAll evaluates the fitted curve at every x in xs.
func (r *FitResult) EvalAll(xs []float64) []unc.Value {
	out := make([]unc.Value, len(xs))
	for i, x := range xs {
		out[i] = r.Eval(x)
	}
	return out
}
