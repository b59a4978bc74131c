package unc_test

import (
	"fmt"

	"github.com/sdat2/sithom/unc"
)

// ExampleValue_Add demonstrates quadrature propagation through a sum
// of two independent measurements.
//
// Scenario:
//
//	Two thermometers read 20.1 ± 0.3 and 19.7 ± 0.4 degrees; the
//	combined offset carries sqrt(0.3^2 + 0.4^2) = 0.5 of error.
func ExampleValue_Add() {
	a := unc.New(20.1, 0.3)
	b := unc.New(19.7, 0.4)
	fmt.Println(a.Add(b))
	// Output:
	// 39.80 ± 0.50
}

// ExampleValue_Tex renders a fitted slope for a figure legend, with
// and without sizing brackets.
func ExampleValue_Tex() {
	slope := unc.New(10, 1)
	fmt.Println(slope.Tex())
	fmt.Println(slope.Tex(unc.WithBracket()))
	fmt.Println(slope.Tex(unc.WithoutExponent()))
	// Output:
	// $(1.0 \pm 0.1) \times 10^{1}$
	// $\left( 1.0 \pm 0.1 \right) \times 10^{1}$
	// $10.0 \pm 1.0$
}
