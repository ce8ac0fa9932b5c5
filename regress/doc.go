// Package regress provides least-squares fitting of measurement series.
//
// The primary entry point is Fit, an ordinary least-squares straight-line
// fit returning the slope, intercept, their standard errors and the
// correlation coefficient as a flat value record:
//
//	res, err := regress.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("a = %.4f ± %.4f\n", res.Slope, res.SlopeStderr)
//
// For data that is not straight, FitBest fits a set of candidate curve
// models (linear, logarithmic, power, exponential, hyperbolic,
// polynomial) by least squares on linearized transforms and ranks them
// by R²:
//
//	result, err := regress.FitBest(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	yhat := result.BestFit.Estimator.Estimate(12.5)
//
// # Edge cases
//
// Fit requires at least two points (check.ErrInsufficientData) with
// non-zero variance in x (check.ErrDegenerateInput). With exactly two
// points the fit is exact and the residual degrees of freedom are zero,
// so ResidualStderr, SlopeStderr and InterceptStderr are NaN rather
// than a silent 0. When y has zero variance the correlation coefficient
// is reported as 0.
//
// All operations are stateless and side-effect free; inputs are treated
// as immutable snapshots and results are plain value records.
package regress
