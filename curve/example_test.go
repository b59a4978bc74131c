package curve_test

import (
	"fmt"

	"github.com/sdat2/sithom/curve"
	"github.com/sdat2/sithom/unc"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFitPoly
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A calibration run produced samples that lie exactly on y = 2x + 1.
//	Fitting the "lin" kind must hand back the generating slope and
//	intercept with a vanishing residual.
func ExampleFitPoly() {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{1, 3, 5, 7, 9, 11}

	res, err := curve.FitPoly(x, y, curve.Lin)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("slope     = %.3f\n", res.Params[0].N)
	fmt.Printf("intercept = %.3f\n", res.Params[1].N)
	fmt.Printf("rss < 1e-12: %v\n", res.RSS < 1e-12)
	// Output:
	// slope     = 2.000
	// intercept = 1.000
	// rss < 1e-12: true
}

// ExamplePolyLabel renders a ready-to-plot legend entry from fitted
// coefficients, highest degree first.
func ExamplePolyLabel() {
	label, err := curve.PolyLabel(curve.Lin, []unc.Value{
		unc.New(2, 0.05),
		unc.New(1, 0.2),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(label)
	// Output:
	// y = $\left( 2.00 \pm 0.05 \right)$x + $\left( 1.0 \pm 0.2 \right)$
}
