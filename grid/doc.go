// Package grid works with 2-D geophysical fields on regular
// latitude/longitude grids: area-weighted reductions, regional
// subsetting, and the unit strings needed to label the results.
//
// What:
//
//   - Field couples a gonum matrix with its coordinate vectors and
//     carries a name and units for labeling.
//   - SpatialMean reduces a field to one number, averaging first over
//     longitude and then over latitude with cos(lat) weights, so polar
//     rows do not dominate the way they would under a naive mean.
//   - MeanLon keeps the intermediate zonal profile.
//   - Subset cuts a field down to a place.BoundingBox window.
//   - LatexUnits rewrites CF-style unit strings ("m s**-2") into the
//     LaTeX forms plot labels want ("m s$^{-2}$").
//
// Why:
//
// Gridded output from reanalyses and climate models arrives as plain
// arrays plus coordinates. The helpers here cover the handful of
// operations every analysis script repeats before plotting.
//
// NaN cells mark missing data and are skipped by the reductions; a row
// with no finite values drops out of the numerator while the weight
// normalization keeps every latitude.
//
// Errors (sentinel):
//
//   - ErrShapeMismatch – matrix dimensions disagree with the coordinates.
//   - ErrBadCoords – empty or non-increasing coordinate vector.
//   - ErrEmptySubset – the requested window contains no grid points.
package grid
