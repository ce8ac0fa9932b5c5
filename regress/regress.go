package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/labstat/check"
)

// Result holds the outcome of an ordinary least-squares straight-line
// fit y = Slope·x + Intercept. It is a plain value record, constructed
// by Fit and never mutated.
type Result struct {
	// Slope is the fitted slope a of y = a·x + b.
	Slope float64
	// Intercept is the fitted intercept b of y = a·x + b.
	Intercept float64
	// SlopeStderr is the standard error of the slope. NaN when n == 2
	// (zero residual degrees of freedom).
	SlopeStderr float64
	// InterceptStderr is the standard error of the intercept. NaN when
	// n == 2.
	InterceptStderr float64
	// R is the Pearson correlation coefficient of x and y. Zero when y
	// has zero variance.
	R float64
	// ResidualStderr is the residual standard error
	// sqrt(Σ(y−ŷ)²/(n−2)). NaN when n == 2.
	ResidualStderr float64
	// N is the number of paired observations.
	N int
}

// Interval is a two-sided confidence interval for a fitted coefficient.
type Interval struct {
	Low  float64
	High float64
}

// Fit performs an ordinary least-squares fit of y on x.
//
// Parameters:
//   - x: independent variable, length n >= 2
//   - y: dependent variable, same length as x
//
// Returns:
//   - *Result: the fitted coefficients with their standard errors
//   - error: check.ErrValidation on malformed input,
//     check.ErrInsufficientData when n < 2, check.ErrDegenerateInput
//     when all x values are identical
func Fit(x, y []float64) (*Result, error) {
	if err := check.Paired(x, y); err != nil {
		return nil, err
	}
	if err := check.MinLen(x, 2); err != nil {
		return nil, fmt.Errorf("regression %w", err)
	}

	n := len(x)
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	// Centered second moments.
	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	if sxx == 0 {
		return nil, fmt.Errorf("%w: zero variance in x", check.ErrDegenerateInput)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	var r float64
	if syy > 0 {
		r = sxy / math.Sqrt(sxx*syy)
	}

	// Residual standard error needs n-2 degrees of freedom; with an
	// exact two-point fit it is undefined, reported as NaN.
	residualStderr := math.NaN()
	slopeStderr := math.NaN()
	interceptStderr := math.NaN()
	if n > 2 {
		var ssr float64
		for i := 0; i < n; i++ {
			resid := y[i] - slope*x[i] - intercept
			ssr += resid * resid
		}
		residualStderr = math.Sqrt(ssr / float64(n-2))
		slopeStderr = residualStderr / math.Sqrt(sxx)
		interceptStderr = residualStderr * math.Sqrt(1/float64(n)+meanX*meanX/sxx)
	}

	return &Result{
		Slope:           slope,
		Intercept:       intercept,
		SlopeStderr:     slopeStderr,
		InterceptStderr: interceptStderr,
		R:               r,
		ResidualStderr:  residualStderr,
		N:               n,
	}, nil
}

// PredictY returns the fitted value ŷ = Slope·x + Intercept.
func (r *Result) PredictY(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// PredictX inverts the fitted line, returning the x with
// Slope·x + Intercept = y. Fails when the slope is zero.
func (r *Result) PredictX(y float64) (float64, error) {
	if r.Slope == 0 {
		return 0, fmt.Errorf("%w: cannot invert a zero-slope fit", check.ErrDegenerateInput)
	}

	return (y - r.Intercept) / r.Slope, nil
}

// Line samples the fitted line at n evenly spaced points over
// [min, max], for plotting. n < 2 or an inverted range fails with
// check.ErrValidation.
func (r *Result) Line(min, max float64, n int) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 sample points, got %d", check.ErrValidation, n)
	}
	if max < min {
		return nil, nil, fmt.Errorf("%w: inverted range [%v, %v]", check.ErrValidation, min, max)
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = min + float64(i)*step
		ys[i] = r.PredictY(xs[i])
	}

	return xs, ys, nil
}

// ConfidenceInterval returns two-sided confidence intervals for the
// slope and intercept at the given confidence level (for example 0.95),
// using the Student's t quantile with N-2 degrees of freedom.
//
// Fails with check.ErrInsufficientData when N == 2 (the standard errors
// are undefined) and check.ErrValidation when level is outside (0, 1).
func (r *Result) ConfidenceInterval(level float64) (slope, intercept Interval, err error) {
	if level <= 0 || level >= 1 {
		return Interval{}, Interval{}, fmt.Errorf("%w: confidence level must be in (0, 1), got %v", check.ErrValidation, level)
	}
	if r.N <= 2 {
		return Interval{}, Interval{}, fmt.Errorf("%w: confidence intervals need more than 2 points", check.ErrInsufficientData)
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(r.N - 2)}
	q := t.Quantile(1 - (1-level)/2)

	slope = Interval{Low: r.Slope - q*r.SlopeStderr, High: r.Slope + q*r.SlopeStderr}
	intercept = Interval{Low: r.Intercept - q*r.InterceptStderr, High: r.Intercept + q*r.InterceptStderr}

	return slope, intercept, nil
}

// String returns a one-line summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Slope: %.6g, Intercept: %.6g, SlopeStderr: %.6g, InterceptStderr: %.6g, R: %.6g}",
		r.Slope, r.Intercept, r.SlopeStderr, r.InterceptStderr, r.R)
}
