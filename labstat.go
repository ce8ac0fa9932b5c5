// Package labstat is a laboratory data-analysis helper library:
// least-squares regression, mean-with-uncertainty aggregation,
// uncertainty propagation, significant-digit rounding, dataset
// persistence and plotting.
//
// Every operation is a stateless, synchronous function over in-memory
// float64 slices; results are flat value records that are constructed,
// returned and never mutated.
//
// # Basic Usage
//
// Fitting a straight line and presenting the slope at the precision
// its uncertainty justifies:
//
//	res, err := labstat.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	slope, _ := labstat.Round(res.Slope, res.SlopeStderr)
//	fmt.Println(slope) // e.g. "2.31 ± 0.04"
//
// Aggregating repeated measurements with a known instrument
// uncertainty:
//
//	m, err := labstat.Mean(readings, meanunc.WithInstrumentUncertainty(0.01))
//
// # Error Handling
//
// Failures are classified by the sentinel errors of the check package:
// check.ErrValidation for malformed input, check.ErrInsufficientData
// for too few points, check.ErrDegenerateInput for inputs that make
// the arithmetic undefined. Test with errors.Is.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// regress, meanunc, round and propagate packages, simplifying the most
// common use cases. For curve-model fitting, dataset persistence and
// plotting, use the regress, dataset and plot packages directly.
package labstat

import (
	"github.com/arloliu/labstat/meanunc"
	"github.com/arloliu/labstat/propagate"
	"github.com/arloliu/labstat/regress"
	"github.com/arloliu/labstat/round"
)

// Fit performs an ordinary least-squares straight-line fit of y on x.
// See regress.Fit.
func Fit(x, y []float64) (*regress.Result, error) {
	return regress.Fit(x, y)
}

// Mean computes the mean of repeated measurements and its standard
// error. See meanunc.Mean.
func Mean(data []float64, opts ...meanunc.Option) (*meanunc.Result, error) {
	return meanunc.Mean(data, opts...)
}

// Round rounds a (value, uncertainty) pair to the library's
// significant-digit convention. See round.Round.
func Round(value, uncertainty float64) (round.Rounded, error) {
	return round.Round(value, uncertainty)
}

// Quadrature combines independent uncertainties as the square root of
// the sum of squares. See propagate.Quadrature.
func Quadrature(us ...float64) float64 {
	return propagate.Quadrature(us...)
}
