package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/sdat2/sithom/grid"
)

// HeatOptions configure Heat. Construct via DefaultHeatOptions and
// apply With* options.
type HeatOptions struct {
	// PaletteSize is the number of palette colors; 0 keeps the
	// family default.
	PaletteSize int
	// Min and Max pin the color range when SetLimits is true.
	Min, Max  float64
	SetLimits bool
	// Balanced derives a color range symmetric about zero from the
	// data, for anomaly fields.
	Balanced bool
}

// HeatOption mutates HeatOptions.
type HeatOption func(*HeatOptions)

// WithPaletteSize sets the number of palette colors.
// Panics if n <= 0.
func WithPaletteSize(n int) HeatOption {
	return func(o *HeatOptions) {
		if n <= 0 {
			panic("figure: WithPaletteSize requires n > 0")
		}
		o.PaletteSize = n
	}
}

// WithLimits pins the color range. Panics unless vmin < vmax.
func WithLimits(vmin, vmax float64) HeatOption {
	return func(o *HeatOptions) {
		if vmin >= vmax {
			panic("figure: WithLimits requires vmin < vmax")
		}
		o.Min, o.Max = vmin, vmax
		o.SetLimits = true
		o.Balanced = false
	}
}

// WithBalancedLimits derives percentile limits from the data and
// balances them about zero.
func WithBalancedLimits() HeatOption {
	return func(o *HeatOptions) {
		o.Balanced = true
		o.SetLimits = false
	}
}

// DefaultHeatOptions spans the full data range with the family default
// palette size.
func DefaultHeatOptions() HeatOptions {
	return HeatOptions{}
}

// Heat renders a field as a styled heat map: the variable's palette,
// missing cells in green, longitude and latitude axis labels, and the
// field's name and units as the title. variable picks the palette
// family (see ColorMap) and need not equal the field name.
//
// By default the color range spans the finite data; WithLimits pins
// it and WithBalancedLimits centers it on zero.
//
// Errors:
//   - ErrUnknownVariable and palette errors from ColorMap.
//   - limit errors from Lim under WithBalancedLimits.
func Heat(f *grid.Field, variable string, opts ...HeatOption) (*plot.Plot, error) {
	o := DefaultHeatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pal, err := ColorMap(variable, o.PaletteSize)
	if err != nil {
		return nil, err
	}

	h := plotter.NewHeatMap(f, pal)
	h.NaN = NaNGreen
	switch {
	case o.SetLimits:
		h.Min, h.Max = o.Min, o.Max
	case o.Balanced:
		vmin, vmax, err := Lim(f.Values(), WithBalance())
		if err != nil {
			return nil, err
		}
		h.Min, h.Max = vmin, vmax
	}

	p := plot.New()
	Style(p)
	p.Title.Text = f.Label()
	p.X.Label.Text = grid.LonLabel
	p.Y.Label.Text = grid.LatLabel
	p.Add(h)
	return p, nil
}
