package curve

import "errors"

// Sentinel errors returned by the fitting routines.
var (
	// ErrMismatchedLen indicates the x and y sample slices differ in length.
	ErrMismatchedLen = errors.New("curve: x and y lengths differ")

	// ErrTooFewPoints indicates there are fewer samples than parameters.
	ErrTooFewPoints = errors.New("curve: fewer samples than parameters")

	// ErrBadGuess indicates an empty or non-finite initial parameter guess.
	ErrBadGuess = errors.New("curve: initial guess is empty or non-finite")

	// ErrNoConverge indicates the minimizer stopped without reaching a minimum.
	ErrNoConverge = errors.New("curve: fit did not converge")

	// ErrSingular indicates the polynomial design matrix has no least-squares solution.
	ErrSingular = errors.New("curve: design matrix is singular")

	// ErrUnknownKind indicates a PolyKind outside the built-in family.
	ErrUnknownKind = errors.New("curve: unknown polynomial kind")

	// ErrBadMaxIter indicates WithMaxIter was given a non-positive count.
	ErrBadMaxIter = errors.New("curve: MaxIter must be positive")

	// ErrBadTol indicates WithTol was given a non-positive tolerance.
	ErrBadTol = errors.New("curve: Tol must be positive")
)

// Model evaluates a parametric curve at x. Fit treats the parameter
// slice as read-only and never mutates it between calls.
type Model func(x float64, params []float64) float64

// PolyKind selects one of the built-in polynomial models. Coefficients
// are always ordered from the highest degree down to the constant term.
type PolyKind int

const (
	// Lin0 is y = a·x, a line through the origin.
	Lin0 PolyKind = iota

	// Lin is y = a·x + b.
	Lin

	// Parab is y = a·x² + b·x + c.
	Parab

	// Cubic is y = a·x³ + b·x² + c·x + d.
	Cubic
)

// Terms returns the number of fitted coefficients, or 0 for an
// unknown kind.
func (k PolyKind) Terms() int {
	switch k {
	case Lin0:
		return 1
	case Lin:
		return 2
	case Parab:
		return 3
	case Cubic:
		return 4
	default:
		return 0
	}
}

// String names the kind the way the fitting scripts spell it.
func (k PolyKind) String() string {
	switch k {
	case Lin0:
		return "lin0"
	case Lin:
		return "lin"
	case Parab:
		return "parab"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Model returns the evaluator for the kind. Parameters run from the
// highest degree to the constant term; Lin0 has no constant term.
func (k PolyKind) Model() Model {
	return func(x float64, params []float64) float64 {
		var v float64
		for _, c := range params {
			v = v*x + c
		}
		if k == Lin0 {
			v *= x
		}
		return v
	}
}

// FitOptions configures the nonlinear Fit entry point.
//
// Fields:
//   - MaxIter – cap on major optimizer iterations.
//   - Tol     – absolute objective-improvement tolerance that declares
//     convergence once the residual sum of squares stops shrinking.
type FitOptions struct {
	MaxIter int
	Tol     float64
}

// FitOption mutates FitOptions.
type FitOption func(*FitOptions)

// WithMaxIter caps the number of major iterations.
// Panics with ErrBadMaxIter if n is not positive.
func WithMaxIter(n int) FitOption {
	return func(o *FitOptions) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithTol sets the absolute objective-improvement tolerance.
// Panics with ErrBadTol if tol is not positive.
func WithTol(tol float64) FitOption {
	return func(o *FitOptions) {
		if tol <= 0 {
			panic(ErrBadTol.Error())
		}
		o.Tol = tol
	}
}

// DefaultFitOptions returns the Fit defaults: 1000 iterations and a
// 1e-10 objective tolerance.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		MaxIter: 1000,
		Tol:     1e-10,
	}
}
