package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sdat2/sithom/curve"
)

// PolyFitOptions configure PolyFit. Construct via
// DefaultPolyFitOptions and apply With* options.
type PolyFitOptions struct {
	// XLabel and YLabel annotate the axes.
	XLabel, YLabel string
	// Extend stretches the prediction grid that fraction of the data
	// span beyond both ends.
	Extend float64
	// Points is the prediction grid resolution.
	Points int
}

// PolyFitOption mutates PolyFitOptions.
type PolyFitOption func(*PolyFitOptions)

// WithAxisLabels sets both axis labels.
func WithAxisLabels(x, y string) PolyFitOption {
	return func(o *PolyFitOptions) { o.XLabel, o.YLabel = x, y }
}

// WithExtend sets how far the fitted curve extends beyond the data,
// as a fraction of the data span. Panics if ext < 0.
func WithExtend(ext float64) PolyFitOption {
	return func(o *PolyFitOptions) {
		if ext < 0 {
			panic("figure: WithExtend requires ext >= 0")
		}
		o.Extend = ext
	}
}

// WithCurvePoints sets the prediction grid resolution.
// Panics if n < 2.
func WithCurvePoints(n int) PolyFitOption {
	return func(o *PolyFitOptions) {
		if n < 2 {
			panic("figure: WithCurvePoints requires n >= 2")
		}
		o.Points = n
	}
}

// DefaultPolyFitOptions extends 5% beyond the data over a 50 point
// curve, with placeholder axis labels.
func DefaultPolyFitOptions() PolyFitOptions {
	return PolyFitOptions{XLabel: "x label", YLabel: "y label", Extend: 0.05, Points: 50}
}

// PolyFit fits a polynomial to the samples and renders the standard
// regression figure: data as X markers, the fitted curve, a shaded
// ±1σ prediction band, and the fitted equation in the legend. It
// returns the plot and the fit, so the caller can save one and log
// the other.
//
// A fit whose prediction error is not finite (too few points for a
// covariance) still renders, just without the band.
//
// Errors: fit and label errors from the curve package; band
// construction failures, wrapped.
func PolyFit(x, y []float64, kind curve.PolyKind, opts ...PolyFitOption) (*plot.Plot, *curve.FitResult, error) {
	o := DefaultPolyFitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Fit.
	res, err := curve.FitPoly(x, y, kind)
	if err != nil {
		return nil, nil, err
	}
	label, err := curve.PolyLabel(kind, res.Params)
	if err != nil {
		return nil, nil, err
	}

	// 2) Prediction grid extended a little beyond the data.
	span := floats.Max(x) - floats.Min(x)
	lo := floats.Min(x) - span*o.Extend
	hi := floats.Max(x) + span*o.Extend
	xs := make([]float64, o.Points)
	step := (hi - lo) / float64(o.Points-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	preds := res.EvalAll(xs)

	// 3) ±1σ band, upper edge then lower edge reversed.
	bandOK := true
	band := make(plotter.XYs, 0, 2*len(preds))
	for i, pr := range preds {
		if !pr.IsFinite() {
			bandOK = false
			break
		}
		band = append(band, plotter.XY{X: xs[i], Y: pr.N + pr.S})
	}
	for i := len(preds) - 1; bandOK && i >= 0; i-- {
		band = append(band, plotter.XY{X: xs[i], Y: preds[i].N - preds[i].S})
	}

	// 4) Assemble the styled plot.
	p := plot.New()
	Style(p)

	if bandOK {
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, nil, fmt.Errorf("figure: polyfit band: %w", err)
		}
		fill := withAlpha(CamBlue, 0x80)
		poly.Color = fill
		poly.LineStyle = draw.LineStyle{Color: fill, Width: vg.Points(0.25)}
		p.Add(poly)
	}

	curvePts := make(plotter.XYs, len(xs))
	for i := range xs {
		curvePts[i] = plotter.XY{X: xs[i], Y: preds[i].N}
	}
	line, err := plotter.NewLine(curvePts)
	if err != nil {
		return nil, nil, fmt.Errorf("figure: polyfit curve: %w", err)
	}
	line.LineStyle = draw.LineStyle{Color: withAlpha(BrickRed, 0xb3), Width: vg.Points(1)}

	dataPts := make(plotter.XYs, len(x))
	for i := range x {
		dataPts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	scatter, err := plotter.NewScatter(dataPts)
	if err != nil {
		return nil, nil, fmt.Errorf("figure: polyfit data: %w", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  withAlpha(OxBlue, 0xb3),
		Radius: vg.Points(2.5),
		Shape:  draw.CrossGlyph{},
	}

	p.Add(line, scatter)
	p.Legend.Add(label, line)
	p.Legend.Top = true
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Min, p.X.Max = lo, hi

	return p, res, nil
}

// withAlpha returns c at the given opacity.
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
