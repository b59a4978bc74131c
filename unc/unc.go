package unc

import "math"

// New returns a Value with the given nominal value and standard error.
// The sign of std is discarded; errors are magnitudes.
func New(nominal, std float64) Value {
	return Value{N: nominal, S: math.Abs(std)}
}

// Exact returns a Value with zero standard error.
func Exact(x float64) Value {
	return Value{N: x}
}

// Add returns v + w with the errors combined in quadrature.
func (v Value) Add(w Value) Value {
	return Value{N: v.N + w.N, S: math.Hypot(v.S, w.S)}
}

// Sub returns v - w with the errors combined in quadrature.
func (v Value) Sub(w Value) Value {
	return Value{N: v.N - w.N, S: math.Hypot(v.S, w.S)}
}

// Mul returns v * w. The error follows the first-order product rule,
// which stays defined when either nominal value is zero.
func (v Value) Mul(w Value) Value {
	return Value{N: v.N * w.N, S: math.Hypot(w.N*v.S, v.N*w.S)}
}

// Div returns v / w. A zero denominator yields a non-finite Value.
func (v Value) Div(w Value) Value {
	return Value{
		N: v.N / w.N,
		S: math.Hypot(v.S/w.N, v.N*w.S/(w.N*w.N)),
	}
}

// Scale returns k * v.
func (v Value) Scale(k float64) Value {
	return Value{N: k * v.N, S: math.Abs(k) * v.S}
}

// Neg returns -v. The error is unchanged.
func (v Value) Neg() Value {
	return Value{N: -v.N, S: v.S}
}

// Pow returns v raised to the power p with first-order propagation.
func (v Value) Pow(p float64) Value {
	return Value{
		N: math.Pow(v.N, p),
		S: math.Abs(p*math.Pow(v.N, p-1)) * v.S,
	}
}

// Apply maps v through an arbitrary differentiable function f with
// derivative dfdx, propagating the error to first order.
func (v Value) Apply(f, dfdx func(float64) float64) Value {
	return Value{N: f(v.N), S: math.Abs(dfdx(v.N)) * v.S}
}

// IsFinite reports whether both the nominal value and the error are
// finite numbers.
func (v Value) IsFinite() bool {
	return !math.IsNaN(v.N) && !math.IsInf(v.N, 0) &&
		!math.IsNaN(v.S) && !math.IsInf(v.S, 0)
}
