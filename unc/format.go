package unc

import (
	"fmt"
	"math"
)

// maxDecimals caps the rendered precision; beyond float64 resolution
// extra digits are noise.
const maxDecimals = 12

// decimals derives the number of decimal places from the ratio of
// nominal value to error, round(log10|n| - log10|s|). A negative
// return signals a degenerate pair (zero, NaN or Inf in either slot)
// that must be rendered verbatim.
func decimals(n, s float64) int {
	if n == 0 || s == 0 ||
		math.IsNaN(n) || math.IsInf(n, 0) ||
		math.IsNaN(s) || math.IsInf(s, 0) {
		return -1
	}
	dp := int(math.Round(math.Log10(math.Abs(n)) - math.Log10(math.Abs(s))))
	if dp < 0 {
		dp = 0
	}
	if dp > maxDecimals {
		dp = maxDecimals
	}
	return dp
}

// String renders the pair as "n ± s" with matched decimal places.
// Degenerate pairs fall back to %g formatting.
func (v Value) String() string {
	dp := decimals(v.N, v.S)
	if dp < 0 {
		return fmt.Sprintf("%g ± %g", v.N, v.S)
	}
	return fmt.Sprintf("%.*f ± %.*f", dp, v.N, dp, v.S)
}

// Tex renders the pair as a LaTeX math snippet for figure labels,
// e.g. "$(1.0 \pm 0.1) \times 10^{1}$". Rendering is pure: the same
// Value and options always produce the same string.
func (v Value) Tex(opts ...TexOption) string {
	o := DefaultTexOptions()
	for _, fn := range opts {
		fn(&o)
	}

	dp := decimals(v.N, v.S)
	if dp < 0 {
		return wrapTex(fmt.Sprintf(`%g \pm %g`, v.N, v.S), o.Bracket, 0)
	}
	if !o.Exponential {
		return wrapTex(fmt.Sprintf(`%.*f \pm %.*f`, dp, v.N, dp, v.S), o.Bracket, 0)
	}

	// Shared decimal exponent taken from the nominal value.
	exp := int(math.Floor(math.Log10(math.Abs(v.N))))
	scale := math.Pow(10, float64(-exp))
	body := fmt.Sprintf(`%.*f \pm %.*f`, dp, v.N*scale, dp, v.S*scale)
	return wrapTex(body, o.Bracket, exp)
}

// wrapTex assembles the final math string: brackets when requested,
// a power-of-ten factor when exp is non-zero.
func wrapTex(body string, bracket bool, exp int) string {
	switch {
	case bracket && exp != 0:
		return fmt.Sprintf(`$\left( %s \right) \times 10^{%d}$`, body, exp)
	case bracket:
		return fmt.Sprintf(`$\left( %s \right)$`, body)
	case exp != 0:
		return fmt.Sprintf(`$(%s) \times 10^{%d}$`, body, exp)
	default:
		return fmt.Sprintf(`$%s$`, body)
	}
}
