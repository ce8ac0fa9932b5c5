package regress

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/labstat/check"
)

// FitBest fits a set of candidate curve models to the paired samples
// and ranks them by R².
//
// By default all model types are tried; WithModels restricts the
// candidate set. Candidates whose domain restrictions the data violates
// (for example a logarithmic model with non-positive x) are skipped;
// the call fails only when no candidate could be fitted.
//
// Parameters:
//   - x: independent variable, length n >= 2
//   - y: dependent variable, same length as x
//   - opts: optional FitOption values
//
// Returns:
//   - *ModelResult: all fitted candidates ranked by R² (best first)
//   - error: validation error, or the last fit error when every
//     candidate failed
func FitBest(x, y []float64, opts ...FitOption) (*ModelResult, error) {
	if err := check.Paired(x, y); err != nil {
		return nil, err
	}
	if err := check.MinLen(x, 2); err != nil {
		return nil, fmt.Errorf("model fit: %w", err)
	}

	cfg := defaultFitConfig()
	if err := applyFitOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	var (
		models  []*Model
		lastErr error
	)
	for _, mt := range cfg.models {
		model, err := fitModel(x, y, mt)
		if err != nil {
			lastErr = err
			continue
		}
		models = append(models, model)
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("no candidate model could be fitted: %w", lastErr)
	}

	slices.SortFunc(models, func(a, b *Model) int {
		switch {
		case a.RSquared > b.RSquared:
			return -1
		case a.RSquared < b.RSquared:
			return 1
		default:
			return 0
		}
	})

	return &ModelResult{BestFit: models[0], Models: models}, nil
}

// FitModel fits a single curve model to the paired samples.
//
// Returns check.ErrDegenerateInput when the data violates the model's
// domain restrictions and check.ErrInsufficientData when there are
// fewer than 2 points. The polynomial model degrades to a linear fit
// when there are only 2 points or the normal equations are singular.
func FitModel(x, y []float64, mt ModelType) (*Model, error) {
	if err := check.Paired(x, y); err != nil {
		return nil, err
	}
	if err := check.MinLen(x, 2); err != nil {
		return nil, fmt.Errorf("model fit: %w", err)
	}

	return fitModel(x, y, mt)
}

func fitModel(x, y []float64, mt ModelType) (*Model, error) {
	switch mt {
	case ModelLinear:
		return fitLinearModel(x, y)
	case ModelLogarithmic:
		return fitLogarithmicModel(x, y)
	case ModelPower:
		return fitPowerModel(x, y)
	case ModelExponential:
		return fitExponentialModel(x, y)
	case ModelHyperbolic:
		return fitHyperbolicModel(x, y)
	case ModelPolynomial:
		return fitPolynomialModel(x, y)
	default:
		return nil, fmt.Errorf("%w: unknown model type %d", check.ErrValidation, mt)
	}
}

// leastSquares solves v = a + b·u by least squares on the transformed
// samples. Fails when u has zero variance.
func leastSquares(u, v []float64) (a, b float64, err error) {
	n := len(u)

	var sumU, sumV, sumUV, sumU2 float64
	for i := 0; i < n; i++ {
		sumU += u[i]
		sumV += v[i]
		sumUV += u[i] * v[i]
		sumU2 += u[i] * u[i]
	}

	meanU := sumU / float64(n)
	meanV := sumV / float64(n)

	denom := sumU2 - float64(n)*meanU*meanU
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: zero variance in transformed x", check.ErrDegenerateInput)
	}

	b = (sumUV - float64(n)*meanU*meanV) / denom
	a = meanV - b*meanU

	return a, b, nil
}

// fitLinearModel fits y = a + b·x.
func fitLinearModel(x, y []float64) (*Model, error) {
	a, b, err := leastSquares(x, y)
	if err != nil {
		return nil, err
	}

	return buildModel(ModelLinear, x, y, []float64{a, b},
		fmt.Sprintf("y = %.4g + %.4g*x", a, b),
		NewLinearEstimator(a, b)), nil
}

// fitLogarithmicModel fits y = a + b·ln(x) via the transform u = ln(x).
func fitLogarithmicModel(x, y []float64) (*Model, error) {
	u := make([]float64, len(x))
	for i, xi := range x {
		if xi <= 0 {
			return nil, fmt.Errorf("%w: logarithmic model requires x > 0, got %v at index %d",
				check.ErrDegenerateInput, xi, i)
		}
		u[i] = math.Log(xi)
	}

	a, b, err := leastSquares(u, y)
	if err != nil {
		return nil, err
	}

	return buildModel(ModelLogarithmic, x, y, []float64{a, b},
		fmt.Sprintf("y = %.4g + %.4g*ln(x)", a, b),
		NewLogarithmicEstimator(a, b)), nil
}

// fitPowerModel fits y = a·x^b via ln(y) = ln(a) + b·ln(x).
func fitPowerModel(x, y []float64) (*Model, error) {
	u := make([]float64, len(x))
	v := make([]float64, len(y))
	for i := range x {
		if x[i] <= 0 {
			return nil, fmt.Errorf("%w: power model requires x > 0, got %v at index %d",
				check.ErrDegenerateInput, x[i], i)
		}
		if y[i] <= 0 {
			return nil, fmt.Errorf("%w: power model requires y > 0, got %v at index %d",
				check.ErrDegenerateInput, y[i], i)
		}
		u[i] = math.Log(x[i])
		v[i] = math.Log(y[i])
	}

	logA, b, err := leastSquares(u, v)
	if err != nil {
		return nil, err
	}
	a := math.Exp(logA)

	return buildModel(ModelPower, x, y, []float64{a, b},
		fmt.Sprintf("y = %.4g * x^%.4g", a, b),
		NewPowerEstimator(a, b)), nil
}

// fitExponentialModel fits y = a·e^(b·x) via ln(y) = ln(a) + b·x.
func fitExponentialModel(x, y []float64) (*Model, error) {
	v := make([]float64, len(y))
	for i, yi := range y {
		if yi <= 0 {
			return nil, fmt.Errorf("%w: exponential model requires y > 0, got %v at index %d",
				check.ErrDegenerateInput, yi, i)
		}
		v[i] = math.Log(yi)
	}

	logA, b, err := leastSquares(x, v)
	if err != nil {
		return nil, err
	}
	a := math.Exp(logA)

	return buildModel(ModelExponential, x, y, []float64{a, b},
		fmt.Sprintf("y = %.4g * e^(%.4g*x)", a, b),
		NewExponentialEstimator(a, b)), nil
}

// fitHyperbolicModel fits y = a + b/x via the transform u = 1/x.
func fitHyperbolicModel(x, y []float64) (*Model, error) {
	u := make([]float64, len(x))
	for i, xi := range x {
		if xi == 0 {
			return nil, fmt.Errorf("%w: hyperbolic model requires x != 0, got 0 at index %d",
				check.ErrDegenerateInput, i)
		}
		u[i] = 1.0 / xi
	}

	a, b, err := leastSquares(u, y)
	if err != nil {
		return nil, err
	}

	return buildModel(ModelHyperbolic, x, y, []float64{a, b},
		fmt.Sprintf("y = %.4g + %.4g/x", a, b),
		NewHyperbolicEstimator(a, b)), nil
}

// fitPolynomialModel fits the quadratic y = a + b·x + c·x² by solving
// the normal equations with Cramer's rule, falling back to a linear
// fit when fewer than 3 points are given or the system is singular:
//
//	[n    Σx   Σx² ] [a]   [Σy  ]
//	[Σx   Σx²  Σx³ ] [b] = [Σxy ]
//	[Σx²  Σx³  Σx⁴ ] [c]   [Σx²y]
func fitPolynomialModel(x, y []float64) (*Model, error) {
	n := len(x)
	if n < 3 {
		// A quadratic needs at least 3 points; fall back to linear.
		return fitLinearModel(x, y)
	}

	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := 0; i < n; i++ {
		xi := x[i]
		xi2 := xi * xi
		xi3 := xi2 * xi
		xi4 := xi3 * xi
		yi := y[i]

		sumX += xi
		sumX2 += xi2
		sumX3 += xi3
		sumX4 += xi4
		sumY += yi
		sumXY += xi * yi
		sumX2Y += xi2 * yi
	}

	fn := float64(n)
	det := fn*(sumX2*sumX4-sumX3*sumX3) -
		sumX*(sumX*sumX4-sumX3*sumX2) +
		sumX2*(sumX*sumX3-sumX2*sumX2)
	if math.Abs(det) < 1e-10 {
		// Singular normal equations; fall back to linear.
		return fitLinearModel(x, y)
	}

	detA := sumY*(sumX2*sumX4-sumX3*sumX3) -
		sumX*(sumXY*sumX4-sumX3*sumX2Y) +
		sumX2*(sumXY*sumX3-sumX2*sumX2Y)
	detB := fn*(sumXY*sumX4-sumX3*sumX2Y) -
		sumY*(sumX*sumX4-sumX3*sumX2) +
		sumX2*(sumX*sumX2Y-sumXY*sumX2)
	detC := fn*(sumX2*sumX2Y-sumXY*sumX3) -
		sumX*(sumX*sumX2Y-sumXY*sumX2) +
		sumY*(sumX*sumX3-sumX2*sumX2)

	a := detA / det
	b := detB / det
	c := detC / det

	return buildModel(ModelPolynomial, x, y, []float64{a, b, c},
		fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", a, b, c),
		NewPolynomialEstimator(a, b, c)), nil
}

// buildModel assembles a Model record, computing R² and RMSE against
// the observed data.
func buildModel(mt ModelType, x, y, coeffs []float64, formula string, est Estimator) *Model {
	predicted := make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = est.Estimate(xi)
	}

	return &Model{
		Type:         mt,
		Coefficients: coeffs,
		RSquared:     rSquared(y, predicted),
		RMSE:         rmse(y, predicted),
		Formula:      formula,
		Estimator:    est,
	}
}

// rSquared computes the coefficient of determination
// R² = 1 - SS_res/SS_tot, or 0 when the observed values have no
// variance.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

// rmse computes the root mean square error of the predictions.
func rmse(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
