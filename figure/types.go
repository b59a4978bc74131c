package figure

import (
	"errors"
	"image/color"
)

var (
	// ErrUnknownVariable indicates no colormap family is registered
	// for the requested variable name.
	ErrUnknownVariable = errors.New("figure: no colormap for variable")

	// ErrNoData indicates an input with no finite values to work from.
	ErrNoData = errors.New("figure: no finite values")

	// ErrDegenerate indicates colorbar limits that collapsed to a
	// single value.
	ErrDegenerate = errors.New("figure: degenerate limits")

	// ErrBadGrid indicates a panel grid that is empty or ragged.
	ErrBadGrid = errors.New("figure: panel grid must be rectangular and non-empty")

	// ErrTooManyPanels indicates more panels than the a..z, A..Z label
	// alphabet can cover.
	ErrTooManyPanels = errors.New("figure: more panels than labels")

	// ErrNotPNG indicates a panel grid destination without a .png
	// extension; grids rasterize onto a single canvas.
	ErrNotPNG = errors.New("figure: panel grids render to PNG only")
)

// StdColors is the standard series palette, muted earth tones that
// survive both screen and print. Series helpers cycle through it in
// order.
var StdColors = []color.Color{
	color.RGBA{R: 0x4d, G: 0x29, B: 0x23, A: 0xff},
	color.RGBA{R: 0x49, G: 0x4f, B: 0x1f, A: 0xff},
	color.RGBA{R: 0x38, G: 0x73, B: 0x4b, A: 0xff},
	color.RGBA{R: 0x49, G: 0x84, B: 0x89, A: 0xff},
	color.RGBA{R: 0x84, G: 0x81, B: 0xba, A: 0xff},
	color.RGBA{R: 0xc2, G: 0x86, B: 0xb2, A: 0xff},
	color.RGBA{R: 0xd7, G: 0xa4, B: 0xa3, A: 0xff},
}

// Named accent colors.
var (
	// CamBlue is a pale Cambridge blue, used for uncertainty bands.
	CamBlue = color.RGBA{R: 0xa3, G: 0xc1, B: 0xad, A: 0xff}

	// OxBlue is a dark Oxford blue, used for data points.
	OxBlue = color.RGBA{R: 0x00, G: 0x21, B: 0x47, A: 0xff}

	// BrickRed is used for fitted curves.
	BrickRed = color.RGBA{R: 0xcb, G: 0x41, B: 0x54, A: 0xff}

	// NaNGreen fills missing cells in heat maps. It contrasts with
	// every palette here, so unexpected gaps stand out; over the ocean
	// it ordinarily marks land.
	NaNGreen = color.RGBA{R: 0x15, G: 0xb0, B: 0x1a, A: 0xff}
)

// Cycle hands out the standard colors in order, wrapping around, for
// plots with one style per series.
type Cycle struct{ i int }

// NewCycle starts a fresh color cycle.
func NewCycle() *Cycle { return &Cycle{} }

// Next returns the next standard color.
func (c *Cycle) Next() color.Color {
	clr := StdColors[c.i%len(StdColors)]
	c.i++
	return clr
}
