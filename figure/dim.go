package figure

import (
	"math"

	"gonum.org/v1/plot/vg"
)

const (
	// ReportWidth is the LaTeX text width of the target report in
	// printer's points. Figures sized against it drop into the
	// document at scale 1, so plot fonts match the body text.
	ReportWidth = 398.3386

	// Golden is the golden ratio, the default width:height aspect.
	Golden = math.Phi
)

// inchesPerPt converts LaTeX printer's points (72.27 to the inch).
const inchesPerPt = 1.0 / 72.27

// DimOptions configure Dim. Construct via DefaultDimOptions and apply
// With* options.
type DimOptions struct {
	// WidthPt is the document text width in printer's points.
	WidthPt float64
	// Fraction is the share of the text width the figure occupies.
	Fraction float64
	// Aspect is the width:height ratio.
	Aspect float64
}

// DimOption mutates DimOptions.
type DimOption func(*DimOptions)

// WithWidthPt sets the document text width in points.
// Panics if pt <= 0.
func WithWidthPt(pt float64) DimOption {
	return func(o *DimOptions) {
		if pt <= 0 {
			panic("figure: WithWidthPt requires pt > 0")
		}
		o.WidthPt = pt
	}
}

// WithFraction sets the share of the text width the figure occupies,
// e.g. 0.5 for a side-by-side pair. Panics if f <= 0.
func WithFraction(f float64) DimOption {
	return func(o *DimOptions) {
		if f <= 0 {
			panic("figure: WithFraction requires f > 0")
		}
		o.Fraction = f
	}
}

// WithAspect sets the width:height ratio. Panics if a <= 0.
func WithAspect(a float64) DimOption {
	return func(o *DimOptions) {
		if a <= 0 {
			panic("figure: WithAspect requires a > 0")
		}
		o.Aspect = a
	}
}

// DefaultDimOptions returns the house defaults: full report width at
// the golden ratio.
func DefaultDimOptions() DimOptions {
	return DimOptions{WidthPt: ReportWidth, Fraction: 1, Aspect: Golden}
}

// Dim returns the figure width and height for a report figure. The
// width is WidthPt*Fraction converted from printer's points, and the
// height is width/Aspect. With the defaults that is the full text
// width at the golden ratio, about 5.51 by 3.41 inches.
func Dim(opts ...DimOption) (w, h vg.Length) {
	o := DefaultDimOptions()
	for _, opt := range opts {
		opt(&o)
	}
	in := o.WidthPt * o.Fraction * inchesPerPt
	w = vg.Length(in) * vg.Inch
	return w, w / vg.Length(o.Aspect)
}
