// Package curve fits models to sampled data by least squares and
// reports every fitted parameter with its standard error.
//
// What:
//
//   - Fit minimizes the residual sum of squares of an arbitrary Model
//     from an initial guess with a derivative-free Nelder-Mead simplex.
//   - FitPoly solves the built-in polynomial family (Lin0, Lin, Parab,
//     Cubic) exactly by QR on the Vandermonde design matrix.
//   - Both paths estimate the parameter covariance as s²(JᵀJ)⁻¹ with J
//     the residual Jacobian at the solution and s² = RSS/(n-p), so the
//     reported errors match the classic nonlinear least-squares
//     contract.
//   - FitResult.Eval propagates the full covariance through the model
//     gradient, giving a 1σ prediction band for plotting.
//   - PolyLabel renders "y = (a ± σ)x + (b ± σ)" legend strings from
//     the fitted coefficients.
//
// Why:
//
//   - Research fits are quoted as value ± error; a fit that drops the
//     covariance is only half an answer.
//   - Polynomial coefficients are ordered from highest degree to the
//     constant term, the convention shared by the labels and the
//     calibration scripts that consume them.
//
// Degenerate fits:
//
//	When the degrees of freedom are not positive or JᵀJ is exactly
//	singular, the fit still returns its best parameters but reports
//	+Inf standard errors; IsFinite on a parameter detects this.
//
// Errors (sentinel):
//
//   - ErrMismatchedLen – x and y have different lengths.
//   - ErrTooFewPoints  – fewer samples than parameters.
//   - ErrBadGuess      – empty or non-finite initial guess.
//   - ErrNoConverge    – the minimizer stopped without converging.
//   - ErrSingular      – the polynomial design matrix has no solution.
//   - ErrUnknownKind   – polynomial kind outside the built-in family.
package curve
