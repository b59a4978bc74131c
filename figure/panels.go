package figure

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	xfnt "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// panelAlphabet orders the panel labels: (a)..(z) then (A)..(Z).
var panelAlphabet = func() []string {
	out := make([]string, 0, 52)
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, fmt.Sprintf("(%c)", c))
	}
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, fmt.Sprintf("(%c)", c))
	}
	return out
}()

// GridOptions configure Grid. Construct via DefaultGridOptions and
// apply With* options.
type GridOptions struct {
	// Width and Height are the whole-canvas dimensions. A zero Height
	// is derived from the panel shape at the golden ratio.
	Width, Height vg.Length
	// DPI is the raster resolution.
	DPI int
	// Labels toggles the (a), (b), ... panel labels.
	Labels bool
	// StartFrom skips that many labels before the first panel.
	StartFrom int
	// LabelSize is the panel label font size.
	LabelSize font.Length
	// LabelPos is the label position relative to each panel, (0,0)
	// bottom left to (1,1) top right. Values outside [0,1] place the
	// label in the padding, useful over busy colormaps.
	LabelPos [2]float64
	// Pad separates neighboring tiles.
	Pad vg.Length
}

// GridOption mutates GridOptions.
type GridOption func(*GridOptions)

// WithCanvasSize sets the whole-canvas dimensions. Panics unless the
// width is positive; a zero height keeps the derived default.
func WithCanvasSize(w, h vg.Length) GridOption {
	return func(o *GridOptions) {
		if w <= 0 || h < 0 {
			panic("figure: WithCanvasSize requires w > 0 and h >= 0")
		}
		o.Width, o.Height = w, h
	}
}

// WithCanvasDPI sets the raster resolution. Panics if dpi <= 0.
func WithCanvasDPI(dpi int) GridOption {
	return func(o *GridOptions) {
		if dpi <= 0 {
			panic("figure: WithCanvasDPI requires dpi > 0")
		}
		o.DPI = dpi
	}
}

// WithoutPanelLabels drops the (a), (b), ... labels.
func WithoutPanelLabels() GridOption {
	return func(o *GridOptions) { o.Labels = false }
}

// WithStartFrom skips the first n labels, for figures continuing a
// lettering sequence from an earlier one. Panics if n < 0.
func WithStartFrom(n int) GridOption {
	return func(o *GridOptions) {
		if n < 0 {
			panic("figure: WithStartFrom requires n >= 0")
		}
		o.StartFrom = n
	}
}

// WithOutsidePanelLabels moves the labels just outside the top left
// corner of each panel, clear of busy colormaps.
func WithOutsidePanelLabels() GridOption {
	return func(o *GridOptions) { o.LabelPos = [2]float64{-0.12, 1.12} }
}

// DefaultGridOptions renders at report width and 600 DPI with bold
// labels inside the top left corner of each panel.
func DefaultGridOptions() GridOptions {
	w, _ := Dim()
	return GridOptions{
		Width:     w,
		DPI:       600,
		Labels:    true,
		LabelSize: vg.Points(10),
		LabelPos:  [2]float64{0.02, 0.95},
		Pad:       vg.Points(10),
	}
}

// Grid renders a rectangular arrangement of plots onto one PNG
// canvas, axes aligned across rows and columns, labeling each panel
// (a), (b), ... in reading order. Nil entries leave an empty tile and
// do not consume a label.
//
// Errors:
//   - ErrBadGrid – empty grid or rows of unequal length.
//   - ErrNotPNG – path does not end in .png.
//   - ErrTooManyPanels – panels beyond the a..z, A..Z alphabet.
//   - filesystem and encoder failures, wrapped.
func Grid(plots [][]*plot.Plot, path string, opts ...GridOption) error {
	// 1) Validate the grid shape.
	rows := len(plots)
	if rows == 0 || len(plots[0]) == 0 {
		return ErrBadGrid
	}
	cols := len(plots[0])
	count := 0
	for _, row := range plots {
		if len(row) != cols {
			return fmt.Errorf("%w: rows of unequal length", ErrBadGrid)
		}
		for _, p := range row {
			if p != nil {
				count++
			}
		}
	}
	if strings.ToLower(filepath.Ext(path)) != ".png" {
		return fmt.Errorf("%w: %s", ErrNotPNG, path)
	}

	// 2) Resolve options.
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Height == 0 {
		o.Height = o.Width * vg.Length(rows) / vg.Length(cols) / vg.Length(Golden)
	}
	if o.Labels && o.StartFrom+count > len(panelAlphabet) {
		return fmt.Errorf("%w: %d panels from offset %d", ErrTooManyPanels, count, o.StartFrom)
	}

	// 3) Lay out, draw, and label the panels.
	c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: o.Pad, PadY: o.Pad,
		PadTop: o.Pad / 2, PadBottom: o.Pad / 2,
		PadLeft: o.Pad / 2, PadRight: o.Pad / 2,
	}
	canvases := plot.Align(plots, tiles, dc)

	next := o.StartFrom
	for i := range plots {
		for j, p := range plots[i] {
			if p == nil {
				continue
			}
			p.Draw(canvases[i][j])
			if o.Labels {
				drawPanelLabel(canvases[i][j], panelAlphabet[next], o)
				next++
			}
		}
	}

	return writePNG(c, path)
}

// drawPanelLabel paints one bold label at the configured relative
// position of a panel canvas.
func drawPanelLabel(dc draw.Canvas, label string, o GridOptions) {
	bold := serif
	bold.Weight = xfnt.WeightBold
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(bold, o.LabelSize),
		Handler: plot.DefaultTextHandler,
	}
	pt := vg.Point{
		X: dc.Min.X + vg.Length(o.LabelPos[0])*(dc.Max.X-dc.Min.X),
		Y: dc.Min.Y + vg.Length(o.LabelPos[1])*(dc.Max.Y-dc.Min.Y),
	}
	dc.FillText(sty, pt, label)
}
