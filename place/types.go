package place

import "errors"

// Sentinel errors for bounding-box construction.
var (
	// ErrBadBounds indicates a minimum bound exceeds its maximum.
	ErrBadBounds = errors.New("place: bounds must satisfy min <= max")
)

// BBoxOptions configures NewBBox.
type BBoxOptions struct {
	// Desc is a free-text label carried for figure titles and logs.
	Desc string
}

// BBoxOption mutates BBoxOptions.
type BBoxOption func(*BBoxOptions)

// WithDesc attaches a human-readable description to the box.
func WithDesc(desc string) BBoxOption {
	return func(o *BBoxOptions) { o.Desc = desc }
}

// DefaultBBoxOptions returns the NewBBox defaults: no description.
func DefaultBBoxOptions() BBoxOptions {
	return BBoxOptions{}
}
