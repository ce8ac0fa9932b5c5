package regress

import (
	"fmt"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/internal/options"
)

type fitConfig struct {
	models []ModelType
}

func defaultFitConfig() fitConfig {
	return fitConfig{
		models: []ModelType{
			ModelLinear,
			ModelLogarithmic,
			ModelPower,
			ModelExponential,
			ModelHyperbolic,
			ModelPolynomial,
		},
	}
}

// FitOption is a functional option for FitBest.
type FitOption = options.Option[*fitConfig]

func applyFitOptions(cfg *fitConfig, opts ...FitOption) error {
	return options.Apply(cfg, opts...)
}

// WithModels restricts the candidate set of FitBest to the given model
// types. Rejects an empty or unknown set.
func WithModels(models ...ModelType) FitOption {
	return func(cfg *fitConfig) error {
		if len(models) == 0 {
			return fmt.Errorf("%w: candidate model set cannot be empty", check.ErrValidation)
		}
		for _, mt := range models {
			if _, ok := modelTypeNames[mt]; !ok {
				return fmt.Errorf("%w: unknown model type %d", check.ErrValidation, mt)
			}
		}
		cfg.models = models

		return nil
	}
}
