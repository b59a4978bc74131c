package figure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SaveOptions configure Save. Construct via DefaultSaveOptions and
// apply With* options.
type SaveOptions struct {
	// Width and Height are the canvas dimensions.
	Width, Height vg.Length
	// DPI is the raster resolution; it only affects PNG output.
	DPI int
}

// SaveOption mutates SaveOptions.
type SaveOption func(*SaveOptions)

// WithDPI sets the raster resolution. Panics if dpi <= 0.
func WithDPI(dpi int) SaveOption {
	return func(o *SaveOptions) {
		if dpi <= 0 {
			panic("figure: WithDPI requires dpi > 0")
		}
		o.DPI = dpi
	}
}

// WithSize sets the canvas dimensions. Panics unless both are
// positive.
func WithSize(w, h vg.Length) SaveOption {
	return func(o *SaveOptions) {
		if w <= 0 || h <= 0 {
			panic("figure: WithSize requires positive dimensions")
		}
		o.Width, o.Height = w, h
	}
}

// DefaultSaveOptions renders at Dim() and 600 DPI, print quality.
func DefaultSaveOptions() SaveOptions {
	w, h := Dim()
	return SaveOptions{Width: w, Height: h, DPI: 600}
}

// Save writes the plot to path, choosing the format from the file
// extension. PNG output honors the DPI option; vector formats (.pdf,
// .svg, .eps, .tex) have no resolution and go through the backend
// directly.
//
// Errors: filesystem and encoder failures, wrapped; unknown
// extensions surface from the backend.
func Save(p *plot.Plot, path string, opts ...SaveOption) error {
	o := DefaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if strings.ToLower(filepath.Ext(path)) != ".png" {
		if err := p.Save(o.Width, o.Height, path); err != nil {
			return fmt.Errorf("figure: save %s: %w", path, err)
		}
		return nil
	}

	c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
	p.Draw(draw.New(c))
	return writePNG(c, path)
}

// writePNG encodes a rendered canvas to path.
func writePNG(c *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	return nil
}
