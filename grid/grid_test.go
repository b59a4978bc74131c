package grid_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"

	"github.com/sdat2/sithom/grid"
	"github.com/sdat2/sithom/place"
)

// Field satisfies gonum's heat map grid interface.
var _ plotter.GridXYZ = (*grid.Field)(nil)

// testField builds a 4x5 field whose cell (i, j) holds 10*i + j.
func testField(t *testing.T) *grid.Field {
	t.Helper()
	data := mat.NewDense(4, 5, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			data.Set(i, j, float64(10*i+j))
		}
	}
	f, err := grid.NewField(
		[]float64{10, 20, 30, 40},
		[]float64{100, 110, 120, 130, 140},
		data,
		grid.WithName("Air Temperature"), grid.WithUnits("degK"),
	)
	require.NoError(t, err)
	return f
}

//----------------------------------------------------------------------//
//                           Construction                               //
//----------------------------------------------------------------------//

// TestNewField_Validation rejects shape and coordinate mismatches.
func TestNewField_Validation(t *testing.T) {
	data := mat.NewDense(2, 3, nil)

	_, err := grid.NewField([]float64{0, 10, 20}, []float64{0, 10, 20}, data)
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)

	_, err = grid.NewField([]float64{10, 0}, []float64{0, 10, 20}, data)
	assert.ErrorIs(t, err, grid.ErrBadCoords)

	_, err = grid.NewField([]float64{0, 10}, nil, data)
	assert.ErrorIs(t, err, grid.ErrBadCoords)
}

// TestTabulate evaluates the generator at every grid point and carries
// the options through.
func TestTabulate(t *testing.T) {
	f, err := grid.Tabulate(
		[]float64{-10, 0, 10},
		[]float64{40, 50},
		func(lat, lon float64) float64 { return lat + lon },
		grid.WithName("Sum"), grid.WithUnits("m"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Sum", f.Name)
	assert.Equal(t, "m", f.Units)
	assert.Equal(t, 30.0, f.Data.At(0, 0))
	assert.Equal(t, 60.0, f.Data.At(2, 1))
}

//----------------------------------------------------------------------//
//                            Reductions                                //
//----------------------------------------------------------------------//

// TestSpatialMean_Uniform leaves a constant field unchanged.
func TestSpatialMean_Uniform(t *testing.T) {
	f, err := grid.Tabulate(
		[]float64{-60, 0, 60},
		[]float64{0, 90, 180},
		func(_, _ float64) float64 { return 3.25 },
	)
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f.SpatialMean(), 1e-12)
}

// TestSpatialMean_WeightsByLatitude checks the cos(lat) weighting: a
// row at 60N carries half the weight of a row at the equator.
func TestSpatialMean_WeightsByLatitude(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{
		1, 1, // lat 0
		0, 0, // lat 60
	})
	f, err := grid.NewField([]float64{0, 60}, []float64{0, 10}, data)
	require.NoError(t, err)

	// (cos(0)*1 + cos(60)*0) / (cos(0) + cos(60)) = 1/1.5.
	assert.InDelta(t, 2.0/3.0, f.SpatialMean(), 1e-9)
}

// TestSpatialMean_SkipsMissing drops all-NaN rows from the numerator
// while the weight normalization keeps every latitude.
func TestSpatialMean_SkipsMissing(t *testing.T) {
	nan := math.NaN()
	data := mat.NewDense(2, 2, []float64{
		nan, nan, // lat 0: fully missing
		2, 2, // lat 60
	})
	f, err := grid.NewField([]float64{0, 60}, []float64{0, 10}, data)
	require.NoError(t, err)

	// cos(60)*2 / (cos(0) + cos(60)) = 1/1.5.
	assert.InDelta(t, 2.0/3.0, f.SpatialMean(), 1e-9)
}

// TestMeanLon averages each row over the finite cells only.
func TestMeanLon(t *testing.T) {
	nan := math.NaN()
	data := mat.NewDense(2, 3, []float64{
		1, 2, nan,
		nan, nan, nan,
	})
	f, err := grid.NewField([]float64{0, 10}, []float64{0, 10, 20}, data)
	require.NoError(t, err)

	got := f.MeanLon()
	require.Len(t, got, 2)
	assert.InDelta(t, 1.5, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
}

//----------------------------------------------------------------------//
//                            Subsetting                                //
//----------------------------------------------------------------------//

// TestSubset cuts an inclusive coordinate window and keeps metadata.
func TestSubset(t *testing.T) {
	f := testField(t)
	bb, err := place.NewBBox(110, 130, 20, 30)
	require.NoError(t, err)

	sub, err := f.Subset(bb)
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{20, 30}, sub.Lats); diff != "" {
		t.Fatalf("lats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{110, 120, 130}, sub.Lons); diff != "" {
		t.Fatalf("lons mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 11.0, sub.Data.At(0, 0))
	assert.Equal(t, 23.0, sub.Data.At(1, 2))
	assert.Equal(t, "Air Temperature", sub.Name)
	assert.Equal(t, "degK", sub.Units)
}

// TestSubset_Empty reports a window with no grid points.
func TestSubset_Empty(t *testing.T) {
	f := testField(t)
	bb, err := place.NewBBox(100, 140, 50, 60)
	require.NoError(t, err)

	_, err = f.Subset(bb)
	assert.ErrorIs(t, err, grid.ErrEmptySubset)
}

// TestSubset_CopyIsIndependent mutates the subset and checks the
// parent field is untouched.
func TestSubset_CopyIsIndependent(t *testing.T) {
	f := testField(t)
	bb, err := place.NewBBox(110, 130, 20, 30)
	require.NoError(t, err)

	sub, err := f.Subset(bb)
	require.NoError(t, err)

	sub.Data.Set(0, 0, -999)
	sub.Lats[0] = -999
	assert.Equal(t, 11.0, f.Data.At(1, 1))
	assert.Equal(t, 20.0, f.Lats[1])
}

//----------------------------------------------------------------------//
//                          Units and labels                            //
//----------------------------------------------------------------------//

// TestLatexUnits rewrites CF unit strings into LaTeX.
func TestLatexUnits(t *testing.T) {
	cases := []struct{ in, want string }{
		{"m s**-2", "m s$^{-2}$"},
		{"kg m s**-2", "kg m s$^{-2}$"},
		{"degree_Celsius", `$^{\circ}$C`},
		{"degK", "K"},
		{"hPa", "hPa"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.LatexUnits(tc.in), "units %q", tc.in)
	}
}

// TestField_Label combines name and units, tolerating either missing.
func TestField_Label(t *testing.T) {
	f := testField(t)
	assert.Equal(t, "Air Temperature [K]", f.Label())

	f.Units = ""
	assert.Equal(t, "Air Temperature", f.Label())

	f.Name = ""
	assert.Equal(t, "", f.Label())

	f.Units = "m s**-1"
	assert.Equal(t, "[m s$^{-1}$]", f.Label())
}

//----------------------------------------------------------------------//
//                           Heat map grid                              //
//----------------------------------------------------------------------//

// TestField_GridXYZ exposes the field in the column-major orientation
// the plotting layer expects.
func TestField_GridXYZ(t *testing.T) {
	f := testField(t)

	c, r := f.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 4, r)
	assert.Equal(t, 100.0, f.X(0))
	assert.Equal(t, 40.0, f.Y(3))
	assert.Equal(t, f.Data.At(2, 3), f.Z(3, 2))
}
