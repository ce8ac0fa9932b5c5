package regress_test

import (
	"fmt"
	"log"

	"github.com/arloliu/labstat/regress"
)

// ExampleFit demonstrates a straight-line fit over paired samples.
func ExampleFit() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	res, err := regress.Fit(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("slope: %.1f\n", res.Slope)
	fmt.Printf("intercept: %.1f\n", res.Intercept)
	fmt.Printf("r: %.1f\n", res.R)
	fmt.Printf("prediction at x=6: %.1f\n", res.PredictY(6))

	// Output:
	// slope: 2.0
	// intercept: 0.0
	// r: 1.0
	// prediction at x=6: 12.0
}

// ExampleFitBest demonstrates ranking candidate curve models by R².
func ExampleFitBest() {
	// Data generated by y = 2·x^1.5.
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 5.6569, 10.3923, 16, 22.3607, 29.3939}

	result, err := regress.FitBest(x, y,
		regress.WithModels(regress.ModelLinear, regress.ModelPower))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("best model: %s\n", result.BestFit.Type)
	fmt.Printf("formula: %s\n", result.BestFit.Formula)

	// Output:
	// best model: power
	// formula: y = 2 * x^1.5
}
