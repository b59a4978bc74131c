// Package sithom collects the utilities a data-driven research
// project reaches for every day: consistent report figures, curve
// fits with honest uncertainties, and the small time, place, and I/O
// helpers that glue an analysis together.
//
// 🚀 What is sithom?
//
//	A plotting-and-fitting toolkit for scientific workflows that brings together:
//		• Figures: report-width sizing, house fonts & palettes, panel grids, heat maps
//		• Fitting: nonlinear least squares & polynomial fits with standard errors
//		• Uncertainty: (nominal ± error) values with first-order propagation
//		• Grids: area-weighted reductions & regional subsets of lat/lon fields
//		• Time & place: timestamps, human-readable durations, bounding boxes
//		• Run records: pretty JSON artifacts, byte sizes, git revision stamps
//
// ✨ Why choose sithom?
//
//   - One aesthetic – every figure in a project shares sizes, fonts, and colormaps
//   - Honest errors – fit parameters carry standard errors, predictions carry bands
//   - Thin layers – each package wraps the numeric stack, never hides it
//   - Script-friendly – stateless helpers that slot into any analysis program
//
// Under the hood, everything is organized under flat subpackages:
//
//	curve/  — least-squares fitting: models, polynomial kinds, covariance
//	figure/ — figure sizing, styling, colormaps, limits, saving, panel grids
//	grid/   — lat/lon fields: spatial means, subsets, LaTeX unit labels
//	jsonio/ — sorted, indented JSON artifacts
//	misc/   — human-readable sizes & git revision stamps
//	place/  — points & bounding boxes with plotting/request orderings
//	timex/  — timestamps, human durations, timed & deadline-bound runs
//	unc/    — uncertain values with propagation & LaTeX rendering
//
// Quick sketch of a session:
//
//	    data ──> curve.FitPoly ──> figure.PolyFit ──> report.png
//	                    │
//	                    └──> unc.Value ──> jsonio.Write ──> run.json
//
// Dive into examples/ for complete programs: a cooling-curve fit, an
// ocean field reduction, and a four-panel report figure.
//
//	go get github.com/sdat2/sithom
package sithom
