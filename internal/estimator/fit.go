package estimator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// FitScalar fits a one-parameter model y = f(x, p) to the given points
// by nonlinear least squares, starting from guess. It returns the fitted
// parameter, or ErrFitFailed when the minimization does not converge.
func FitScalar(f func(x, p float64) float64, xs, ys []float64, guess float64) (float64, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0, fmt.Errorf("fit: need matching non-empty x and y, got %d and %d", len(xs), len(ys))
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			sum := 0.0
			for i, x := range xs {
				r := ys[i] - f(x, p[0])
				sum += r * r
			}
			return sum
		},
	}

	result, err := optimize.Minimize(problem, []float64{guess}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}
	if err := result.Status.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}

	fitted := result.X[0]
	if math.IsNaN(fitted) || math.IsInf(fitted, 0) || math.IsNaN(result.F) {
		return 0, fmt.Errorf("%w: non-finite parameter", ErrFitFailed)
	}

	return fitted, nil
}
