// Package place holds the small geographic value objects shared by
// research scripts: a lon/lat point and a bounding box that knows the
// two axis orderings common in geoscience tooling.
//
// What:
//
//   - Point is an immutable lon/lat pair, comparable with ==.
//   - BoundingBox is a lon/lat window with an optional description.
//   - Cartopy() and ECMWF() return the same box in the two orderings
//     the downstream plotting and reanalysis-download tools expect:
//     [lonMin, lonMax, latMin, latMax] versus
//     [latMax, lonMin, latMin, lonMax].
//   - Point.BBox and BoundingBox.Pad buffer a region for map margins.
//
// Why:
//
//	Transposed bounding-box axes are a classic silent bug when a box
//	built for one tool is handed to another; naming each ordering after
//	its consumer removes the guesswork.
//
// Coordinates are plain degrees. No geocoding, no projection: values
// in, values out.
//
// Errors (sentinel):
//
//   - ErrBadBounds – a minimum exceeds its maximum in NewBBox.
package place
