// Package round presents (value, uncertainty) pairs at a physically
// meaningful precision.
//
// The convention is fixed: the uncertainty is rounded to two
// significant digits (half away from zero) and the value is rounded to
// the same decimal place. A zero uncertainty is not an error; the value
// alone is rounded to two significant digits. The operation is
// idempotent: rounding an already-rounded pair changes nothing.
package round

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/labstat/check"
)

// Rounded is a (value, uncertainty) pair rounded to a shared decimal
// place derived from the uncertainty's order of magnitude.
type Rounded struct {
	Value       float64
	Uncertainty float64
}

// String formats the pair as "value ± uncertainty".
func (r Rounded) String() string {
	return fmt.Sprintf("%v ± %v", r.Value, r.Uncertainty)
}

// Round rounds uncertainty to two significant digits and value to the
// matching decimal place.
//
// Edge cases:
//   - uncertainty == 0: value alone is rounded to two significant
//     digits, uncertainty stays 0
//   - uncertainty < 0: check.ErrDegenerateInput
//   - non-finite value or uncertainty: check.ErrValidation
func Round(value, uncertainty float64) (Rounded, error) {
	if err := check.FiniteScalar("value", value); err != nil {
		return Rounded{}, err
	}
	if err := check.FiniteScalar("uncertainty", uncertainty); err != nil {
		return Rounded{}, err
	}
	if uncertainty < 0 {
		return Rounded{}, fmt.Errorf("%w: uncertainty must be >= 0, got %v", check.ErrDegenerateInput, uncertainty)
	}

	if uncertainty == 0 {
		return Rounded{Value: RoundValue(value), Uncertainty: 0}, nil
	}

	d := decimalsFor(uncertainty)
	ur := roundTo(uncertainty, d)
	// Rounding can push the uncertainty across a power of ten
	// (0.099 -> 0.10); re-derive the decimal place so the result stays
	// at two significant digits.
	if d2 := decimalsFor(ur); d2 != d {
		d = d2
		ur = roundTo(ur, d)
	}

	return Rounded{Value: roundTo(value, d), Uncertainty: ur}, nil
}

// RoundValue rounds a bare value to two significant digits.
func RoundValue(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return roundTo(x, decimalsFor(x))
}

// Series rounds paired value/uncertainty series element-wise.
func Series(values, uncertainties []float64) ([]Rounded, error) {
	if err := check.SameLength(values, uncertainties); err != nil {
		return nil, err
	}

	out := make([]Rounded, len(values))
	for i := range values {
		r, err := Round(values[i], uncertainties[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// decimalsFor returns the decimal place of the second significant
// digit of x: positive below 1, negative at 100 and above. The order
// of magnitude is read off the shortest decimal form instead of
// Log10, whose result at exact powers of ten can land on either side
// of a floor, and whose argument underflows for subnormal x.
func decimalsFor(x float64) int {
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])

	return 1 - exp
}

// roundTo rounds x to d decimal places, half away from zero. Negative
// d rounds to tens, hundreds and so on.
//
// The scaled product x·10^d can round onto a .5 boundary that the
// stored value of x sits strictly inside; the fused multiply-add
// residual recovers the discarded low bits so the tie decision follows
// the stored value rather than the scaled product.
func roundTo(x float64, d int) float64 {
	// Powers of ten are exact in a float64 only up to 10^22; outside
	// that range, round through the decimal representation.
	if d > 22 {
		v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', d, 64), 64)

		return v
	}
	if d < -22 {
		scale := math.Pow(10, float64(-d))

		return math.Round(x/scale) * scale
	}

	var p, r, scale float64
	if d >= 0 {
		scale = math.Pow(10, float64(d))
		p = x * scale
		if math.IsInf(p, 0) {
			v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', d, 64), 64)

			return v
		}
		r = math.FMA(x, scale, -p)
	} else {
		scale = math.Pow(10, float64(-d))
		p = x / scale
		r = math.FMA(-p, scale, x)
	}

	n := math.Round(p)
	if r != 0 && math.Abs(p-math.Trunc(p)) == 0.5 && (r > 0) == math.Signbit(p) {
		// p landed exactly on the boundary but the stored value is
		// strictly on the near side of it.
		n = math.Trunc(p)
	}

	if d >= 0 {
		return n / scale
	}

	return n * scale
}
