package fit

import (
	"strconv"

	"github.com/GoSim-25-26J-441/fitting-core/pkg/utils"
)

// Objective scores a candidate value vector. Lower scores are better; a
// returned error aborts the whole fit.
type Objective func(values []float64) (float64, error)

// Model evaluates a curve at x for the given value vector. The vector is
// laid out in the collection's insertion order, locked entries included.
type Model func(x float64, values []float64) float64

// SumSquaredResiduals builds the least-squares objective for fitting model
// to the observed (xs, ys) points.
func SumSquaredResiduals(xs, ys []float64, model Model) (Objective, error) {
	if model == nil {
		return nil, &InvalidDataError{Reason: "model is nil"}
	}
	if len(xs) != len(ys) {
		return nil, &InvalidDataError{
			Reason: "xs length " + strconv.Itoa(len(xs)) + " does not match ys length " + strconv.Itoa(len(ys)),
		}
	}
	if len(xs) == 0 {
		return nil, &InvalidDataError{Reason: "no data points"}
	}

	return func(values []float64) (float64, error) {
		residuals := make([]float64, len(xs))
		for i, x := range xs {
			residuals[i] = ys[i] - model(x, values)
		}
		return utils.SumSquares(residuals), nil
	}, nil
}

// InvalidDataError indicates observed data unusable for building an objective
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string {
	return "invalid fit data: " + e.Reason
}
