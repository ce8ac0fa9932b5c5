// Package check validates measurement series before computation.
//
// Every computational package in labstat calls into check defensively
// before touching its inputs. The package defines the three error kinds
// the library reports, as sentinel errors suitable for errors.Is:
//
//   - ErrValidation: malformed or mismatched input shapes
//   - ErrInsufficientData: too few data points for the requested statistic
//   - ErrDegenerateInput: inputs that make the arithmetic undefined
//
// Returned errors wrap the sentinel and name the violated condition:
//
//	if err := check.Paired(x, y); err != nil {
//	    if errors.Is(err, check.ErrValidation) {
//	        // caller decides; no retries, no partial results
//	    }
//	}
package check

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors classifying every failure the library can report.
var (
	// ErrValidation indicates malformed or mismatched input shapes:
	// empty series, length mismatch between paired series, or a
	// non-finite element.
	ErrValidation = errors.New("invalid input")

	// ErrInsufficientData indicates too few data points for the
	// requested statistic.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput indicates inputs that make the arithmetic
	// undefined, such as zero variance in x or a negative uncertainty.
	ErrDegenerateInput = errors.New("degenerate input")
)

// NonEmpty verifies that the series contains at least one element.
func NonEmpty(xs []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("%w: empty series", ErrValidation)
	}

	return nil
}

// Finite verifies that every element of the series is a finite real
// number. NaN and ±Inf elements fail with the offending index named.
func Finite(xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite element %v at index %d", ErrValidation, v, i)
		}
	}

	return nil
}

// Series verifies that the series is non-empty and all-finite.
func Series(xs []float64) error {
	if err := NonEmpty(xs); err != nil {
		return err
	}

	return Finite(xs)
}

// SameLength verifies that two paired series have equal length.
func SameLength(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: series length mismatch: %d vs %d", ErrValidation, len(x), len(y))
	}

	return nil
}

// Paired verifies that x and y form valid paired observations: equal
// length, non-empty, all elements finite.
func Paired(x, y []float64) error {
	if err := SameLength(x, y); err != nil {
		return err
	}
	if err := Series(x); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := Series(y); err != nil {
		return fmt.Errorf("y: %w", err)
	}

	return nil
}

// MinLen verifies that the series holds at least n elements, failing
// with ErrInsufficientData otherwise.
func MinLen(xs []float64, n int) error {
	if len(xs) < n {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInsufficientData, n, len(xs))
	}

	return nil
}

// FiniteScalar verifies that a single value is a finite real number.
func FiniteScalar(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrValidation, name, v)
	}

	return nil
}
