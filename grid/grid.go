package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sdat2/sithom/place"
)

// NewField wraps a data matrix and its coordinates as a Field. The
// field takes ownership of the provided slices and matrix.
//
// Errors:
//   - ErrBadCoords – lats or lons empty or not strictly increasing.
//   - ErrShapeMismatch – data is not len(lats) x len(lons).
func NewField(lats, lons []float64, data *mat.Dense, opts ...FieldOption) (*Field, error) {
	// 1) Validate the coordinate vectors.
	if !increasing(lats) || !increasing(lons) {
		return nil, ErrBadCoords
	}

	// 2) Validate the data shape against them.
	r, c := data.Dims()
	if r != len(lats) || c != len(lons) {
		return nil, fmt.Errorf("%w: data %dx%d, coords %dx%d",
			ErrShapeMismatch, r, c, len(lats), len(lons))
	}

	// 3) Apply options.
	o := DefaultFieldOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Field{Lats: lats, Lons: lons, Data: data, Name: o.Name, Units: o.Units}, nil
}

// Tabulate builds a Field by evaluating f at every grid point. Handy
// for synthetic fields in tests and examples.
//
// Errors: ErrBadCoords as for NewField.
func Tabulate(lats, lons []float64, f func(lat, lon float64) float64, opts ...FieldOption) (*Field, error) {
	if !increasing(lats) || !increasing(lons) {
		return nil, ErrBadCoords
	}
	data := mat.NewDense(len(lats), len(lons), nil)
	for i, lat := range lats {
		for j, lon := range lons {
			data.Set(i, j, f(lat, lon))
		}
	}
	return NewField(lats, lons, data, opts...)
}

// increasing reports whether c is non-empty and strictly increasing.
func increasing(c []float64) bool {
	if len(c) == 0 {
		return false
	}
	for i := 1; i < len(c); i++ {
		if c[i] <= c[i-1] {
			return false
		}
	}
	return true
}

// MeanLon averages the field over longitude, returning one value per
// latitude row. NaN cells are skipped; a row with no finite cells
// yields NaN.
func (f *Field) MeanLon() []float64 {
	r, c := f.Data.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		sum, n := 0.0, 0
		for j := 0; j < c; j++ {
			if v := f.Data.At(i, j); !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// SpatialMean reduces the field to a single area-weighted average.
//
// Description:
//
//	The reduction runs in two stages. First each latitude row is
//	averaged over longitude (MeanLon). The row means are then combined
//	with cos(lat) weights,
//
//	    mean = sum_j cos(lat_j) * rowmean_j / sum_j cos(lat_j),
//
//	which accounts for the shrinking area of grid cells toward the
//	poles. Rows with no finite cells drop out of the numerator; the
//	denominator always sums the weights of every latitude.
//
// A field with no finite cells at all reduces to 0.
func (f *Field) SpatialMean() float64 {
	weights := make([]float64, len(f.Lats))
	for i, lat := range f.Lats {
		weights[i] = math.Cos(lat * math.Pi / 180)
	}
	num := 0.0
	for i, m := range f.MeanLon() {
		if !math.IsNaN(m) {
			num += weights[i] * m
		}
	}
	return num / floats.Sum(weights)
}

// Subset cuts the field down to the grid points inside bb, bounds
// inclusive. The returned field owns fresh copies of the selected
// coordinates and data; mutating it leaves the receiver untouched.
//
// Errors: ErrEmptySubset when no grid point falls inside bb.
func (f *Field) Subset(bb place.BoundingBox) (*Field, error) {
	rlo, rhi, ok := window(f.Lats, bb.Lat[0], bb.Lat[1])
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrEmptySubset, bb)
	}
	clo, chi, ok := window(f.Lons, bb.Lon[0], bb.Lon[1])
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrEmptySubset, bb)
	}

	return &Field{
		Lats:  append([]float64(nil), f.Lats[rlo:rhi]...),
		Lons:  append([]float64(nil), f.Lons[clo:chi]...),
		Data:  mat.DenseCopyOf(f.Data.Slice(rlo, rhi, clo, chi)),
		Name:  f.Name,
		Units: f.Units,
	}, nil
}

// window locates the half-open index range of coords falling in
// [min, max]. coords must be sorted ascending.
func window(coords []float64, min, max float64) (lo, hi int, ok bool) {
	lo = sort.SearchFloat64s(coords, min)
	hi = sort.Search(len(coords), func(i int) bool { return coords[i] > max })
	return lo, hi, lo < hi
}

// Values returns a copy of the data in row-major order, for feeding
// statistics helpers that want a flat sample.
func (f *Field) Values() []float64 {
	r, c := f.Data.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, f.Data.At(i, j))
		}
	}
	return out
}

// Dims returns the grid extent as (columns, rows), satisfying gonum's
// plotter.GridXYZ.
func (f *Field) Dims() (c, r int) { return len(f.Lons), len(f.Lats) }

// Z returns the value at column c (longitude index) and row r
// (latitude index).
func (f *Field) Z(c, r int) float64 { return f.Data.At(r, c) }

// X returns the longitude of column c.
func (f *Field) X(c int) float64 { return f.Lons[c] }

// Y returns the latitude of row r.
func (f *Field) Y(r int) float64 { return f.Lats[r] }
