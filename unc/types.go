package unc

// Value is a quantity with a symmetric 1σ standard error.
//
// The zero Value is an exact zero. Values are immutable; every
// operation returns a new Value.
type Value struct {
	N float64 // nominal value
	S float64 // standard error, always non-negative
}

// TexOptions configures Tex rendering.
//
// Fields:
//   - Bracket     – wrap the pair in \left( … \right) so it can be
//     multiplied by a variable name in a fit label.
//   - Exponential – pull a shared power of ten out of the pair when the
//     nominal value has a non-zero decimal exponent.
type TexOptions struct {
	Bracket     bool
	Exponential bool
}

// TexOption mutates TexOptions.
type TexOption func(*TexOptions)

// WithBracket wraps the rendered pair in sizing brackets.
func WithBracket() TexOption {
	return func(o *TexOptions) { o.Bracket = true }
}

// WithoutExponent disables scientific notation; the pair is rendered
// at its natural scale regardless of magnitude.
func WithoutExponent() TexOption {
	return func(o *TexOptions) { o.Exponential = false }
}

// DefaultTexOptions returns the Tex defaults: no brackets, shared
// exponent enabled.
func DefaultTexOptions() TexOptions {
	return TexOptions{
		Bracket:     false,
		Exponential: true,
	}
}
