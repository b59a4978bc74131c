package grid

import "strings"

// unitReplacements maps CF unit spellings onto their LaTeX forms.
// Applied in order after exponent rewriting.
var unitReplacements = []struct{ from, to string }{
	{"degree_Celsius", `$^{\circ}$C`},
	{"degK", "K"},
}

// LatexUnits rewrites a CF-style unit string into the LaTeX form used
// on plot labels:
//
//	LatexUnits("m s**-2")        == "m s$^{-2}$"
//	LatexUnits("kg m s**-2")     == "kg m s$^{-2}$"
//	LatexUnits("degree_Celsius") == "$^{\\circ}$C"
//	LatexUnits("degK")           == "K"
//
// Each space-separated token may carry a "**" exponent, which becomes
// a superscript. Unknown units pass through unchanged.
func LatexUnits(units string) string {
	parts := strings.Split(units, " ")
	for i, p := range parts {
		if base, exp, ok := strings.Cut(p, "**"); ok {
			parts[i] = base + "$^{" + exp + "}$"
		}
	}
	out := strings.Trim(strings.Join(parts, " "), " ")
	for _, r := range unitReplacements {
		if strings.Contains(units, r.from) {
			out = strings.ReplaceAll(out, r.from, r.to)
		}
	}
	return out
}

// Label renders the field name and LaTeX units the way an axis or
// colorbar label wants them: "Air Temperature [K]". Either part may be
// empty.
func (f *Field) Label() string {
	switch {
	case f.Name == "" && f.Units == "":
		return ""
	case f.Units == "":
		return f.Name
	case f.Name == "":
		return "[" + LatexUnits(f.Units) + "]"
	default:
		return f.Name + " [" + LatexUnits(f.Units) + "]"
	}
}
