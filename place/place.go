package place

import "fmt"

// Point is a position on the Earth's surface in degrees, longitude
// first. Points are immutable values and compare with ==.
type Point struct {
	Lon float64
	Lat float64
}

// New returns the Point at (lon, lat).
func New(lon, lat float64) Point {
	return Point{Lon: lon, Lat: lat}
}

// String renders the point in constructor order.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.Lon, p.Lat)
}

// BBox returns the box extending buffer degrees either side of the
// point on both axes. Latitudes are not clamped to the poles; callers
// working near them pick their own buffer.
func (p Point) BBox(buffer float64) BoundingBox {
	return BoundingBox{
		Lon: [2]float64{p.Lon - buffer, p.Lon + buffer},
		Lat: [2]float64{p.Lat - buffer, p.Lat + buffer},
	}
}

// BoundingBox is a lon/lat window. Lon and Lat hold [min, max] in
// degrees; Desc is free text for titles and logs.
type BoundingBox struct {
	Lon  [2]float64
	Lat  [2]float64
	Desc string
}

// Global spans the whole surface.
var Global = BoundingBox{
	Lon:  [2]float64{-180, 180},
	Lat:  [2]float64{-90, 90},
	Desc: "global",
}

// NewBBox builds a validated box from its four bounds.
func NewBBox(lonMin, lonMax, latMin, latMax float64, opts ...BBoxOption) (BoundingBox, error) {
	if lonMin > lonMax || latMin > latMax {
		return BoundingBox{}, fmt.Errorf("%w: lon [%g, %g] lat [%g, %g]",
			ErrBadBounds, lonMin, lonMax, latMin, latMax)
	}
	o := DefaultBBoxOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return BoundingBox{
		Lon:  [2]float64{lonMin, lonMax},
		Lat:  [2]float64{latMin, latMax},
		Desc: o.Desc,
	}, nil
}

// Cartopy returns [lonMin, lonMax, latMin, latMax], the map-extent
// ordering used when framing a plot axis.
func (b BoundingBox) Cartopy() [4]float64 {
	return [4]float64{b.Lon[0], b.Lon[1], b.Lat[0], b.Lat[1]}
}

// ECMWF returns [latMax, lonMin, latMin, lonMax], the North/West/
// South/East ordering reanalysis download requests expect.
func (b BoundingBox) ECMWF() [4]float64 {
	return [4]float64{b.Lat[1], b.Lon[0], b.Lat[0], b.Lon[1]}
}

// Contains reports whether the point lies inside the box, boundary
// included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lon >= b.Lon[0] && p.Lon <= b.Lon[1] &&
		p.Lat >= b.Lat[0] && p.Lat <= b.Lat[1]
}

// Pad grows the box by buffer degrees on every side, keeping Desc.
func (b BoundingBox) Pad(buffer float64) BoundingBox {
	return BoundingBox{
		Lon:  [2]float64{b.Lon[0] - buffer, b.Lon[1] + buffer},
		Lat:  [2]float64{b.Lat[0] - buffer, b.Lat[1] + buffer},
		Desc: b.Desc,
	}
}

// String renders the box with its description when present.
func (b BoundingBox) String() string {
	if b.Desc == "" {
		return fmt.Sprintf("BoundingBox(lon [%g, %g], lat [%g, %g])", b.Lon[0], b.Lon[1], b.Lat[0], b.Lat[1])
	}
	return fmt.Sprintf("BoundingBox(%s, lon [%g, %g], lat [%g, %g])", b.Desc, b.Lon[0], b.Lon[1], b.Lat[0], b.Lat[1])
}
