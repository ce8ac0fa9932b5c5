// Package meanunc estimates the best value of a repeatedly measured
// quantity and the uncertainty of that estimate.
//
// The statistical standard error of the mean is the sample standard
// deviation (n−1 denominator) divided by sqrt(n). When the measuring
// instrument has a known resolution or calibration uncertainty, it is
// folded in by quadrature:
//
//	res, err := meanunc.Mean(readings, meanunc.WithInstrumentUncertainty(0.01))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.4f ± %.4f\n", res.Mean, res.Stderr)
//
// A single measurement carries no statistical error estimate: with no
// instrument uncertainty supplied it fails with
// check.ErrInsufficientData, with one supplied the instrument
// uncertainty becomes the total uncertainty.
package meanunc

import (
	"fmt"
	"math"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/internal/options"
)

// Result holds the mean of a measurement series and its standard
// error. It is a plain value record.
type Result struct {
	// Mean is the arithmetic mean of the measurements.
	Mean float64
	// Stderr is the standard error of the mean; when an instrument
	// uncertainty was supplied it is the quadrature combination of the
	// statistical and instrument terms.
	Stderr float64
	// N is the number of measurements.
	N int
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Mean: %.6g, Stderr: %.6g, N: %d}", r.Mean, r.Stderr, r.N)
}

type config struct {
	instrumentUnc float64
	hasInstrument bool
}

// Option is a functional option for Mean.
type Option = options.Option[*config]

// WithInstrumentUncertainty folds a known instrument resolution or
// calibration uncertainty u into the result by quadrature. Rejects
// negative and non-finite u.
func WithInstrumentUncertainty(u float64) Option {
	return func(cfg *config) error {
		if err := check.FiniteScalar("instrument uncertainty", u); err != nil {
			return err
		}
		if u < 0 {
			return fmt.Errorf("%w: instrument uncertainty must be >= 0, got %v", check.ErrDegenerateInput, u)
		}
		cfg.instrumentUnc = u
		cfg.hasInstrument = true

		return nil
	}
}

// Mean computes the arithmetic mean of repeated measurements of the
// same quantity and the standard error of that mean.
//
// Parameters:
//   - data: the measurement series, non-empty and all-finite
//   - opts: optional Option values
//
// Returns:
//   - *Result: mean and standard error
//   - error: check.ErrValidation on malformed input, or
//     check.ErrInsufficientData for a single measurement with no
//     instrument uncertainty
func Mean(data []float64, opts ...Option) (*Result, error) {
	if err := check.Series(data); err != nil {
		return nil, err
	}

	var cfg config
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := len(data)
	if n < 2 && !cfg.hasInstrument {
		return nil, fmt.Errorf("%w: a single measurement has no error estimate; supply an instrument uncertainty", check.ErrInsufficientData)
	}

	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(n)

	// Statistical SEM: sample std (n-1 denominator) / sqrt(n). Zero by
	// convention for a single measurement, which is only reachable with
	// an instrument uncertainty supplied.
	var sem float64
	if n >= 2 {
		var ss float64
		for _, v := range data {
			d := v - mean
			ss += d * d
		}
		sem = math.Sqrt(ss/float64(n-1)) / math.Sqrt(float64(n))
	}

	stderr := sem
	if cfg.hasInstrument {
		stderr = math.Sqrt(sem*sem + cfg.instrumentUnc*cfg.instrumentUnc)
	}

	return &Result{Mean: mean, Stderr: stderr, N: n}, nil
}
