package figure

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// LimOptions configure Lim. Construct via DefaultLimOptions and apply
// With* options.
type LimOptions struct {
	// Percentile p clips the colorbar to the [p, 100-p] percentile
	// range of the finite values.
	Percentile float64
	// Balance makes the limits symmetric about zero, for anomaly
	// fields on diverging colormaps.
	Balance bool
}

// LimOption mutates LimOptions.
type LimOption func(*LimOptions)

// WithPercentile sets the clipping percentile.
// Panics unless 0 < p < 50.
func WithPercentile(p float64) LimOption {
	return func(o *LimOptions) {
		if p <= 0 || p >= 50 {
			panic("figure: WithPercentile requires 0 < p < 50")
		}
		o.Percentile = p
	}
}

// WithBalance balances the limits around zero.
func WithBalance() LimOption {
	return func(o *LimOptions) { o.Balance = true }
}

// DefaultLimOptions clips at the 5th and 95th percentiles, unbalanced.
func DefaultLimOptions() LimOptions {
	return LimOptions{Percentile: 5}
}

// Lim picks colorbar limits for a data sample: the p-th and (100-p)-th
// percentiles of the finite values, optionally balanced about zero.
// Clipping the tails keeps a few extreme cells from washing out the
// rest of the map. NaN cells are ignored.
//
// The percentile estimator needs at least 100/p samples below the cut,
// so a 5th percentile wants 20 or more finite values.
//
// Errors:
//   - ErrNoData – no finite values in vals.
//   - ErrDegenerate – the two percentiles coincide.
//   - estimator errors for samples too small to resolve p, wrapped.
func Lim(vals []float64, opts ...LimOption) (vmin, vmax float64, err error) {
	o := DefaultLimOptions()
	for _, opt := range opts {
		opt(&o)
	}

	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, ErrNoData
	}

	vmin, err = stats.Percentile(finite, o.Percentile)
	if err != nil {
		return 0, 0, fmt.Errorf("figure: lim: %w", err)
	}
	vmax, err = stats.Percentile(finite, 100-o.Percentile)
	if err != nil {
		return 0, 0, fmt.Errorf("figure: lim: %w", err)
	}
	if vmax <= vmin {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrDegenerate, vmin, vmax)
	}

	if o.Balance {
		vmin, vmax = Balance(vmin, vmax)
	}
	return vmin, vmax, nil
}

// Balance widens (vmin, vmax) to the smallest range symmetric about
// zero that contains it:
//
//	Balance(1.4, 2.5)  == (-2.5, 2.5)
//	Balance(-1.0, 0.5) == (-1.0, 1.0)
func Balance(vmin, vmax float64) (float64, float64) {
	return math.Min(-vmax, vmin), math.Max(-vmin, vmax)
}
