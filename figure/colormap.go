package figure

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// families collapses variable aliases onto a palette family, so every
// figure in a project colors the same physical quantity the same way.
var families = map[string]string{
	"rain":   "rain",
	"ranom":  "tarn",
	"tarn":   "tarn",
	"u":      "speed",
	"v":      "speed",
	"speed":  "speed",
	"sst":    "sst",
	"salt":   "haline",
	"sss":    "haline",
	"haline": "haline",
	"delta":  "delta",
}

// ColorMap returns the palette for a variable name, matched
// case-insensitively. Sequential ramps cover rain and speed-like
// variables, perceptually uniform thermal and haline ramps cover
// temperature and salinity, and anomalies ("ranom", "tarn", "delta")
// get diverging maps meant to straddle zero.
//
// n is the number of colors; 0 picks the family default, a 255 step
// ramp for the smooth maps and 9 classes for the ColorBrewer ones.
//
// Errors:
//   - ErrUnknownVariable – no palette family for the name.
//   - ColorBrewer class-count errors, wrapped; those ramps only exist
//     for small class counts.
func ColorMap(variable string, n int) (palette.Palette, error) {
	family, ok := families[strings.ToLower(variable)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, variable)
	}
	switch family {
	case "rain":
		return brewerPalette(brewer.TypeSequential, "YlGnBu", n)
	case "tarn":
		return brewerPalette(brewer.TypeDiverging, "BrBG", n)
	case "sst":
		return smoothPalette(moreland.ExtendedBlackBody(), n), nil
	case "haline":
		return smoothPalette(moreland.ExtendedKindlmann(), n), nil
	case "speed":
		return smoothPalette(moreland.Kindlmann(), n), nil
	default: // delta
		return smoothPalette(moreland.SmoothBlueRed(), n), nil
	}
}

func brewerPalette(typ brewer.PaletteType, name string, n int) (palette.Palette, error) {
	if n == 0 {
		n = 9
	}
	pal, err := brewer.GetPalette(typ, name, n)
	if err != nil {
		return nil, fmt.Errorf("figure: colormap %s: %w", name, err)
	}
	return pal, nil
}

func smoothPalette(m palette.ColorMap, n int) palette.Palette {
	if n == 0 {
		n = 255
	}
	return m.Palette(n)
}
