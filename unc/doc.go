// Package unc represents quantities as (nominal, standard error) pairs
// and propagates the error through arithmetic to first order.
//
// What:
//
//   - Value wraps a nominal float64 and a symmetric 1σ standard error.
//   - Arithmetic (Add, Sub, Mul, Div, Scale, Pow, Apply) returns new
//     Values with the error combined under the independence assumption.
//   - String and Tex render a Value with the number of decimal places
//     implied by the ratio of nominal to error, ready for axis labels
//     and figure legends.
//
// Why:
//
//   - Fitted parameters are meaningless without their uncertainty;
//     carrying both in one immutable value keeps downstream formatting
//     and propagation honest.
//   - A shared formatting rule keeps every figure in a project quoting
//     errors to the same precision.
//
// Propagation rules (independent inputs, first order):
//
//   - Add/Sub:  σ = √(σa² + σb²)
//   - Mul:      σ = √((b·σa)² + (a·σb)²)
//   - Div:      σ = √((σa/b)² + (a·σb/b²)²)
//   - Pow(p):   σ = |p·n^(p-1)|·σn
//   - Apply(f): σ = |f'(n)|·σn
//
// Errors:
//
//   - None. Every operation is total: degenerate inputs (zero
//     denominators, negative bases under Pow) yield non-finite Values
//     that IsFinite reports as such, mirroring float64 semantics.
package unc
