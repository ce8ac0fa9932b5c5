// Package propagate combines and propagates measurement uncertainties.
//
// Quadrature combines independent uncertainties as the square root of
// the sum of squares. Propagate applies the first-order propagation law
// u_f² = Σ (∂f/∂x_i · u_i)² to an arbitrary function of several
// measured quantities, estimating the partial derivatives by central
// finite differences. Compatible checks whether two measured values
// agree within their extended uncertainty bounds.
package propagate

import (
	"fmt"
	"math"

	"github.com/arloliu/labstat/check"
)

// Quadrature combines independent uncertainties:
// sqrt(u1² + u2² + ...).
func Quadrature(us ...float64) float64 {
	var sum float64
	for _, u := range us {
		sum += u * u
	}

	return math.Sqrt(sum)
}

// Result holds a propagated value and its uncertainty.
type Result struct {
	Value       float64
	Uncertainty float64
}

// String formats the result as "value ± uncertainty".
func (r Result) String() string {
	return fmt.Sprintf("%v ± %v", r.Value, r.Uncertainty)
}

// Propagate evaluates f at the measured values and propagates the
// per-variable uncertainties to the result by the first-order law.
//
// The partial derivatives are estimated by central finite differences
// with a step scaled to each variable's magnitude, which is accurate
// for the smooth closed-form expressions encountered in lab work.
//
// Parameters:
//   - f: function of the measured quantities, evaluated on a slice of
//     the same length as values
//   - values: measured values of the variables
//   - uncertainties: per-variable uncertainties, same length as values,
//     all >= 0
//
// Returns:
//   - Result: f(values) and the propagated uncertainty
//   - error: check.ErrValidation on shape mismatch or non-finite
//     input, check.ErrDegenerateInput on a negative uncertainty
func Propagate(f func([]float64) float64, values, uncertainties []float64) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil function", check.ErrValidation)
	}
	if err := check.Paired(values, uncertainties); err != nil {
		return Result{}, err
	}
	for i, u := range uncertainties {
		if u < 0 {
			return Result{}, fmt.Errorf("%w: uncertainty at index %d must be >= 0, got %v",
				check.ErrDegenerateInput, i, u)
		}
	}

	value := f(values)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Result{}, fmt.Errorf("%w: f is not finite at the measured values", check.ErrDegenerateInput)
	}

	// u_f² = Σ (∂f/∂x_i · u_i)², derivatives by central difference.
	point := make([]float64, len(values))
	copy(point, values)

	var sum float64
	for i, u := range uncertainties {
		if u == 0 {
			continue
		}

		h := derivativeStep(values[i])
		orig := point[i]

		point[i] = orig + h
		hi := f(point)
		point[i] = orig - h
		lo := f(point)
		point[i] = orig

		deriv := (hi - lo) / (2 * h)
		if math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			return Result{}, fmt.Errorf("%w: derivative of f with respect to variable %d is not finite",
				check.ErrDegenerateInput, i)
		}

		sum += deriv * u * deriv * u
	}

	return Result{Value: value, Uncertainty: math.Sqrt(sum)}, nil
}

// derivativeStep picks the central-difference step for a variable of
// the given magnitude: cbrt(eps) relative scaling is the standard
// optimum for second-order accurate differences.
func derivativeStep(x float64) float64 {
	h := math.Cbrt(2.2e-16) * math.Max(math.Abs(x), 1)

	return h
}

// Compatible reports whether x1 and x2 agree within their extended
// uncertainty bounds, returning the smallest coverage factor k >= 2
// with |x1 - x2| <= k·sqrt(u1² + u2²).
//
// k == 2 means agreement at the conventional 95% coverage. Fails with
// check.ErrDegenerateInput when both uncertainties are zero and the
// values differ (no finite k exists), when the separation exceeds
// MaxInt32 combined uncertainties, and on negative uncertainties.
func Compatible(x1, x2, u1, u2 float64) (int, error) {
	for name, v := range map[string]float64{"x1": x1, "x2": x2, "u1": u1, "u2": u2} {
		if err := check.FiniteScalar(name, v); err != nil {
			return 0, err
		}
	}
	if u1 < 0 || u2 < 0 {
		return 0, fmt.Errorf("%w: uncertainties must be >= 0", check.ErrDegenerateInput)
	}

	diff := math.Abs(x1 - x2)
	combined := Quadrature(u1, u2)
	if combined == 0 {
		if diff == 0 {
			return 2, nil
		}

		return 0, fmt.Errorf("%w: values differ with zero combined uncertainty", check.ErrDegenerateInput)
	}

	ratio := diff / combined
	if ratio >= math.MaxInt32 {
		return 0, fmt.Errorf("%w: separation exceeds %d combined uncertainties", check.ErrDegenerateInput, math.MaxInt32)
	}

	k := int(math.Ceil(ratio))
	if k < 2 {
		k = 2
	}

	return k, nil
}
