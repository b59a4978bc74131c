package grid

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch indicates the data matrix dimensions do not
	// match the coordinate vectors (rows must equal len(lats), columns
	// len(lons)).
	ErrShapeMismatch = errors.New("grid: data shape does not match coordinates")

	// ErrBadCoords indicates a coordinate vector is empty or not
	// strictly increasing.
	ErrBadCoords = errors.New("grid: coordinates must be strictly increasing")

	// ErrEmptySubset indicates a bounding box that contains no grid
	// points of the field.
	ErrEmptySubset = errors.New("grid: bounding box selects no grid points")
)

// Axis label strings for latitude/longitude plots.
const (
	LonLabel = "Longitude [$^{\\circ}$E]"
	LatLabel = "Latitude [$^{\\circ}$N]"
)

// Field is a 2-D geophysical field on a regular latitude/longitude
// grid. Data holds one row per latitude and one column per longitude,
// both coordinate vectors strictly increasing. NaN cells mark missing
// data.
//
// Field satisfies gonum's plotter.GridXYZ, so it can feed a heat map
// directly.
type Field struct {
	// Lats are the latitude coordinates in degrees north, one per row.
	Lats []float64
	// Lons are the longitude coordinates in degrees east, one per column.
	Lons []float64
	// Data is the gridded variable, indexed (row=lat, col=lon).
	Data *mat.Dense
	// Name is the human readable variable name ("Air Temperature").
	Name string
	// Units is the CF-style unit string ("degK", "m s**-1").
	Units string
}

// FieldOptions configures a new Field. Construct via DefaultFieldOptions
// and apply With* options.
type FieldOptions struct {
	// Name labels the variable; empty is allowed.
	Name string
	// Units is the CF-style unit string; empty is allowed.
	Units string
}

// FieldOption mutates FieldOptions.
type FieldOption func(*FieldOptions)

// WithName sets the variable name carried by the field.
func WithName(name string) FieldOption {
	return func(o *FieldOptions) { o.Name = name }
}

// WithUnits sets the CF-style unit string carried by the field.
func WithUnits(units string) FieldOption {
	return func(o *FieldOptions) { o.Units = units }
}

// DefaultFieldOptions returns the zero configuration: unnamed,
// unitless.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{}
}
