package regress

import (
	"math"
	"strings"
)

// ModelType identifies a candidate curve model y = f(x).
type ModelType int

const (
	// ModelLinear is the straight line y = a + b·x.
	ModelLinear ModelType = iota
	// ModelLogarithmic is y = a + b·ln(x); requires x > 0.
	ModelLogarithmic
	// ModelPower is y = a·x^b; requires x > 0 and y > 0.
	ModelPower
	// ModelExponential is y = a·e^(b·x); requires y > 0.
	ModelExponential
	// ModelHyperbolic is y = a + b/x; requires x != 0.
	ModelHyperbolic
	// ModelPolynomial is the quadratic y = a + b·x + c·x².
	ModelPolynomial
)

var modelTypeNames = map[ModelType]string{
	ModelLinear:      "linear",
	ModelLogarithmic: "logarithmic",
	ModelPower:       "power",
	ModelExponential: "exponential",
	ModelHyperbolic:  "hyperbolic",
	ModelPolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given name, or
// ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	for mt, n := range modelTypeNames {
		if n == strings.ToLower(name) {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator predicts y for a given x using fitted model coefficients.
type Estimator interface {
	// Estimate returns the model prediction ŷ(x).
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the fitted coefficients.
	Coefficients() []float64
}

// LinearEstimator implements y = a + b·x.
type LinearEstimator struct {
	a, b float64
}

// NewLinearEstimator creates a linear estimator with the given coefficients.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{a: a, b: b}
}

func (e *LinearEstimator) Estimate(x float64) float64 { return e.a + e.b*x }
func (e *LinearEstimator) Type() ModelType            { return ModelLinear }
func (e *LinearEstimator) Coefficients() []float64    { return []float64{e.a, e.b} }

// LogarithmicEstimator implements y = a + b·ln(x).
type LogarithmicEstimator struct {
	a, b float64
}

// NewLogarithmicEstimator creates a logarithmic estimator with the given coefficients.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{a: a, b: b}
}

// Estimate returns a + b·ln(x); +Inf outside the x > 0 domain.
func (e *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return e.a + e.b*math.Log(x)
}

func (e *LogarithmicEstimator) Type() ModelType         { return ModelLogarithmic }
func (e *LogarithmicEstimator) Coefficients() []float64 { return []float64{e.a, e.b} }

// PowerEstimator implements y = a·x^b.
type PowerEstimator struct {
	a, b float64
}

// NewPowerEstimator creates a power estimator with the given coefficients.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{a: a, b: b}
}

// Estimate returns a·x^b; +Inf outside the x > 0 domain.
func (e *PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return e.a * math.Pow(x, e.b)
}

func (e *PowerEstimator) Type() ModelType         { return ModelPower }
func (e *PowerEstimator) Coefficients() []float64 { return []float64{e.a, e.b} }

// ExponentialEstimator implements y = a·e^(b·x).
type ExponentialEstimator struct {
	a, b float64
}

// NewExponentialEstimator creates an exponential estimator with the given coefficients.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{a: a, b: b}
}

func (e *ExponentialEstimator) Estimate(x float64) float64 { return e.a * math.Exp(e.b*x) }
func (e *ExponentialEstimator) Type() ModelType            { return ModelExponential }
func (e *ExponentialEstimator) Coefficients() []float64    { return []float64{e.a, e.b} }

// HyperbolicEstimator implements y = a + b/x.
type HyperbolicEstimator struct {
	a, b float64
}

// NewHyperbolicEstimator creates a hyperbolic estimator with the given coefficients.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{a: a, b: b}
}

// Estimate returns a + b/x; +Inf at x == 0.
func (e *HyperbolicEstimator) Estimate(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}

	return e.a + e.b/x
}

func (e *HyperbolicEstimator) Type() ModelType         { return ModelHyperbolic }
func (e *HyperbolicEstimator) Coefficients() []float64 { return []float64{e.a, e.b} }

// PolynomialEstimator implements the quadratic y = a + b·x + c·x².
type PolynomialEstimator struct {
	a, b, c float64
}

// NewPolynomialEstimator creates a quadratic estimator with the given coefficients.
func NewPolynomialEstimator(a, b, c float64) *PolynomialEstimator {
	return &PolynomialEstimator{a: a, b: b, c: c}
}

func (e *PolynomialEstimator) Estimate(x float64) float64 { return e.a + e.b*x + e.c*x*x }
func (e *PolynomialEstimator) Type() ModelType            { return ModelPolynomial }
func (e *PolynomialEstimator) Coefficients() []float64    { return []float64{e.a, e.b, e.c} }
