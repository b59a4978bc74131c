package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdat2/sithom/curve"
	"github.com/sdat2/sithom/unc"
)

// linspace fills n evenly spaced samples of [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

// apply evaluates a model over every x.
func apply(xs []float64, m curve.Model, params []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m(x, params)
	}
	return ys
}

//----------------------------------------------------------------------------//
// FitPoly
//----------------------------------------------------------------------------//

// TestFitPoly_ExactRecovery verifies that noise-free polynomial data
// returns the generating coefficients with near-zero reported errors.
func TestFitPoly_ExactRecovery(t *testing.T) {
	cases := []struct {
		name   string
		kind   curve.PolyKind
		params []float64
	}{
		{"Lin0", curve.Lin0, []float64{1.5}},
		{"Lin", curve.Lin, []float64{2, 1}},
		{"Parab", curve.Parab, []float64{1, -3, 2}},
		{"Cubic", curve.Cubic, []float64{0.5, -1, 2, -1}},
	}
	xs := linspace(-4, 5, 12)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ys := apply(xs, tc.kind.Model(), tc.params)
			res, err := curve.FitPoly(xs, ys, tc.kind)
			require.NoError(t, err)
			require.Len(t, res.Params, len(tc.params))

			for i, want := range tc.params {
				assert.InDelta(t, want, res.Params[i].N, 1e-8, "coefficient %d nominal", i)
				assert.Less(t, res.Params[i].S, 1e-6, "coefficient %d error should be near zero", i)
			}
			assert.Less(t, res.RSS, 1e-16, "exact data leaves no residual")
			assert.Equal(t, len(xs)-len(tc.params), res.Dof)
		})
	}
}

// TestFitPoly_CoefficientOrder pins the highest-degree-first ordering.
func TestFitPoly_CoefficientOrder(t *testing.T) {
	xs := linspace(0, 9, 10)
	ys := apply(xs, curve.Lin.Model(), []float64{2, 1})
	res, err := curve.FitPoly(xs, ys, curve.Lin)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Params[0].N, 1e-9, "slope comes first")
	assert.InDelta(t, 1.0, res.Params[1].N, 1e-9, "constant term comes last")
}

// TestFitPoly_Errors exercises the input sentinels.
func TestFitPoly_Errors(t *testing.T) {
	_, err := curve.FitPoly([]float64{1, 2}, []float64{1}, curve.Lin)
	assert.ErrorIs(t, err, curve.ErrMismatchedLen)

	_, err = curve.FitPoly([]float64{1, 2, 3}, []float64{1, 2, 3}, curve.Cubic)
	assert.ErrorIs(t, err, curve.ErrTooFewPoints, "cubic needs four samples")

	_, err = curve.FitPoly([]float64{1}, []float64{1}, curve.PolyKind(99))
	assert.ErrorIs(t, err, curve.ErrUnknownKind)
}

// TestFitPoly_NoisyErrorsArePositive checks that scattered data yields
// finite, strictly positive coefficient errors.
func TestFitPoly_NoisyErrorsArePositive(t *testing.T) {
	xs := linspace(0, 9, 10)
	ys := apply(xs, curve.Lin.Model(), []float64{2, 1})
	for i := range ys {
		if i%2 == 0 {
			ys[i] += 0.05
		} else {
			ys[i] -= 0.05
		}
	}
	res, err := curve.FitPoly(xs, ys, curve.Lin)
	require.NoError(t, err)
	for i, p := range res.Params {
		assert.True(t, p.IsFinite(), "coefficient %d", i)
		assert.Greater(t, p.S, 0.0, "coefficient %d", i)
	}
	assert.Greater(t, res.RSS, 0.0)
}

//----------------------------------------------------------------------------//
// Fit (nonlinear)
//----------------------------------------------------------------------------//

// expDecay is y = a·exp(-b·x) with params [a, b].
func expDecay(x float64, p []float64) float64 {
	return p[0] * math.Exp(-p[1]*x)
}

// TestFit_ExpDecayRecovery verifies the nonlinear path recovers the
// generating parameters of an exponential decay from a nearby guess.
func TestFit_ExpDecayRecovery(t *testing.T) {
	xs := linspace(0, 5, 21)
	ys := apply(xs, expDecay, []float64{3, 0.5})

	res, err := curve.Fit(xs, ys, expDecay, []float64{2, 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Params[0].N, 1e-3)
	assert.InDelta(t, 0.5, res.Params[1].N, 1e-3)
	assert.Less(t, res.Params[0].S, 1e-2, "exact data leaves near-zero error")
	assert.Less(t, res.Params[1].S, 1e-2)
}

// TestFit_MatchesPolyOnLinear cross-checks Fit against the exact
// linear solver on the same samples.
func TestFit_MatchesPolyOnLinear(t *testing.T) {
	xs := linspace(0, 9, 10)
	ys := apply(xs, curve.Lin.Model(), []float64{1.5, -2})

	direct, err := curve.FitPoly(xs, ys, curve.Lin)
	require.NoError(t, err)
	iterative, err := curve.Fit(xs, ys, curve.Lin.Model(), []float64{1, 0})
	require.NoError(t, err)

	for i := range direct.Params {
		assert.InDelta(t, direct.Params[i].N, iterative.Params[i].N, 1e-3, "parameter %d", i)
	}
}

// TestFit_Errors exercises the precondition sentinels.
func TestFit_Errors(t *testing.T) {
	_, err := curve.Fit([]float64{1, 2}, []float64{1}, expDecay, []float64{1, 1})
	assert.ErrorIs(t, err, curve.ErrMismatchedLen)

	_, err = curve.Fit([]float64{1, 2}, []float64{1, 2}, expDecay, nil)
	assert.ErrorIs(t, err, curve.ErrBadGuess)

	_, err = curve.Fit([]float64{1, 2}, []float64{1, 2}, expDecay, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, curve.ErrBadGuess)

	_, err = curve.Fit([]float64{1}, []float64{1}, expDecay, []float64{1, 1})
	assert.ErrorIs(t, err, curve.ErrTooFewPoints)
}

// TestFit_OptionPanics confirms invalid option arguments panic when
// applied.
func TestFit_OptionPanics(t *testing.T) {
	o := curve.DefaultFitOptions()
	assert.Panics(t, func() { curve.WithMaxIter(0)(&o) })
	assert.Panics(t, func() { curve.WithTol(-1)(&o) })
}

//----------------------------------------------------------------------------//
// FitResult
//----------------------------------------------------------------------------//

// TestEval_PropagatesCovariance checks that evaluating a linear fit at
// x=0 reports exactly the intercept's standard error.
func TestEval_PropagatesCovariance(t *testing.T) {
	xs := linspace(0, 9, 10)
	ys := apply(xs, curve.Lin.Model(), []float64{2, 1})
	for i := range ys {
		if i%2 == 0 {
			ys[i] += 0.1
		} else {
			ys[i] -= 0.1
		}
	}
	res, err := curve.FitPoly(xs, ys, curve.Lin)
	require.NoError(t, err)

	at0 := res.Eval(0)
	assert.InDelta(t, res.Params[1].N, at0.N, 1e-9, "nominal at x=0 is the intercept")
	assert.InDelta(t, res.Params[1].S, at0.S, 1e-9, "error at x=0 is the intercept's error")

	all := res.EvalAll([]float64{0, 1, 2})
	require.Len(t, all, 3)
	assert.Equal(t, at0, all[0])
}

// TestFit_UnderdeterminedReportsInf verifies that a saturated fit
// (zero degrees of freedom) keeps its parameters but reports +Inf
// errors, and that IsFinite flags them.
func TestFit_UnderdeterminedReportsInf(t *testing.T) {
	xs := []float64{0, 1}
	ys := apply(xs, curve.Lin.Model(), []float64{2, 1})
	res, err := curve.FitPoly(xs, ys, curve.Lin)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Dof)
	assert.Nil(t, res.Cov)
	for i, p := range res.Params {
		assert.True(t, math.IsInf(p.S, 1), "parameter %d error should be +Inf", i)
		assert.False(t, p.IsFinite(), "parameter %d", i)
	}
	assert.InDelta(t, 2.0, res.Params[0].N, 1e-9, "nominals survive the degenerate covariance")
}

//----------------------------------------------------------------------------//
// PolyLabel
//----------------------------------------------------------------------------//

// TestPolyLabel_Lin pins the rendered legend string for a line.
func TestPolyLabel_Lin(t *testing.T) {
	label, err := curve.PolyLabel(curve.Lin, []unc.Value{unc.New(2, 0.05), unc.New(1, 0.2)})
	require.NoError(t, err)
	assert.Equal(t, `y = $\left( 2.00 \pm 0.05 \right)$x + $\left( 1.0 \pm 0.2 \right)$`, label)
}

// TestPolyLabel_Parab checks the exponent markup on higher degrees.
func TestPolyLabel_Parab(t *testing.T) {
	label, err := curve.PolyLabel(curve.Parab, []unc.Value{
		unc.New(1, 0.1), unc.New(-3, 0.2), unc.New(2, 0.3),
	})
	require.NoError(t, err)
	assert.Contains(t, label, "x$^{2}$")
	assert.Contains(t, label, " + ")
}

// TestPolyLabel_Errors covers kind and arity mismatches.
func TestPolyLabel_Errors(t *testing.T) {
	_, err := curve.PolyLabel(curve.PolyKind(42), nil)
	assert.ErrorIs(t, err, curve.ErrUnknownKind)

	_, err = curve.PolyLabel(curve.Lin, []unc.Value{unc.Exact(1)})
	assert.ErrorIs(t, err, curve.ErrMismatchedLen)
}
