package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// serif is the house typeface. Liberation Serif is embedded in the
// plotting backend, so nothing needs to exist on disk at run time.
var serif = font.Font{Typeface: "Liberation", Variant: "Serif"}

// StyleOptions configure Style. Construct via DefaultStyleOptions and
// apply With* options.
type StyleOptions struct {
	// FontSize is used for the title, axis labels, and legend.
	FontSize font.Length
	// TickSize is used for tick labels, slightly smaller.
	TickSize font.Length
}

// StyleOption mutates StyleOptions.
type StyleOption func(*StyleOptions)

// WithFontSize sets the title/label/legend font size.
// Panics if size <= 0.
func WithFontSize(size font.Length) StyleOption {
	return func(o *StyleOptions) {
		if size <= 0 {
			panic("figure: WithFontSize requires size > 0")
		}
		o.FontSize = size
	}
}

// WithTickSize sets the tick label font size. Panics if size <= 0.
func WithTickSize(size font.Length) StyleOption {
	return func(o *StyleOptions) {
		if size <= 0 {
			panic("figure: WithTickSize requires size > 0")
		}
		o.TickSize = size
	}
}

// DefaultStyleOptions matches 10pt report text: 10pt labels, 9pt
// ticks.
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{FontSize: vg.Points(10), TickSize: vg.Points(9)}
}

// Style applies the house style to a plot: serif faces sized to match
// the surrounding report text, with smaller tick labels. Call it once
// per plot, after plot.New and before drawing.
func Style(p *plot.Plot, opts ...StyleOption) {
	o := DefaultStyleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p.Title.TextStyle.Font = font.From(serif, o.FontSize)
	p.X.Label.TextStyle.Font = font.From(serif, o.FontSize)
	p.Y.Label.TextStyle.Font = font.From(serif, o.FontSize)
	p.X.Tick.Label.Font = font.From(serif, o.TickSize)
	p.Y.Tick.Label.Font = font.From(serif, o.TickSize)
	p.Legend.TextStyle.Font = font.From(serif, o.FontSize)
}

// SeriesLine returns the line style for the i-th series, cycling the
// standard palette at 1pt width.
func SeriesLine(i int) draw.LineStyle {
	return draw.LineStyle{
		Color: StdColors[i%len(StdColors)],
		Width: vg.Points(1),
	}
}

// SeriesGlyph returns the matching scatter style, an X marker.
func SeriesGlyph(i int) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  StdColors[i%len(StdColors)],
		Radius: vg.Points(2),
		Shape:  draw.CrossGlyph{},
	}
}
