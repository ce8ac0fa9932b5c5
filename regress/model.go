package regress

import "fmt"

// Model is a fitted curve model with its goodness-of-fit metrics and a
// concrete estimator for making predictions.
type Model struct {
	// Type is the curve model type.
	Type ModelType
	// Coefficients contains the fitted coefficients, in the order the
	// model formula states them.
	Coefficients []float64
	// RSquared is the coefficient of determination (0-1, higher is better).
	RSquared float64
	// RMSE is the root mean square error of the fit.
	RMSE float64
	// Formula is a human-readable representation of the fitted model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// ModelResult is the outcome of fitting a set of candidate curve
// models, ranked by R².
type ModelResult struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// Models contains all fitted candidates ranked by R² (best first).
	Models []*Model
}

// String returns a one-line summary of the result.
func (r *ModelResult) String() string {
	if r.BestFit == nil {
		return "ModelResult{BestFit: nil}"
	}

	return fmt.Sprintf("ModelResult{BestFit: %s, Candidates: %d}", r.BestFit, len(r.Models))
}
