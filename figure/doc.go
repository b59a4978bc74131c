// Package figure produces consistent, report-ready plots: one place
// for sizes, fonts, colors, and colormaps, so every figure in a
// project looks like it came from the same hand.
//
// What:
//
//   - Dim sizes a figure against the report text width at the golden
//     ratio, so it drops into the document without scaling.
//   - Style applies the house fonts to a plot; SeriesLine and
//     SeriesGlyph cycle the standard palette per series.
//   - ColorMap picks the palette for a variable name, Lim picks
//     percentile colorbar limits, Balance centers them on zero.
//   - Save writes a plot with DPI control for raster output.
//   - Grid tiles plots onto one canvas with aligned axes and (a), (b)
//     panel labels.
//   - PolyFit fits a polynomial and renders the standard regression
//     figure with a ±1σ band.
//   - Heat renders a gridded field with its variable's palette,
//     missing cells in green.
//
// Why:
//
// Research figures get remade dozens of times as the analysis evolves.
// Centralizing the aesthetics means a change of mind about fonts or
// palettes is one edit, not an archaeology session through scripts.
//
// Options:
//
// Every entry point takes functional With* options over package
// defaults; an invalid option argument panics when the option is
// applied, since it is a caller bug rather than a data condition.
//
// Errors (sentinel):
//
//   - ErrUnknownVariable – no colormap family for a variable name.
//   - ErrNoData – no finite values to derive limits from.
//   - ErrDegenerate – colorbar limits collapsed to one value.
//   - ErrBadGrid, ErrTooManyPanels, ErrNotPNG – panel grid misuse.
//
// Filesystem and backend failures pass through wrapped.
package figure
