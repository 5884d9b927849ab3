package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SumSquaredError builds Σ (predᵢ - targetᵢ)².
//
// The loss is a graph node; call Backward on it after zeroing the model's
// gradients. Panics if the slices are empty or differ in length.
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLossArgs("SumSquaredError", predictions, targets)

	terms := make([]*autodiff.Value, len(predictions))
	for i := range predictions {
		terms[i] = autodiff.Pow(autodiff.Sub(predictions[i], targets[i]), 2)
	}

	return autodiff.Sum(terms...)
}

// MSELoss builds mean((predᵢ - targetᵢ)²).
func MSELoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLossArgs("MSELoss", predictions, targets)
	return autodiff.Scale(SumSquaredError(predictions, targets), 1/float64(len(predictions)))
}

func checkLossArgs(name string, predictions, targets []*autodiff.Value) {
	if len(predictions) == 0 {
		panic(name + ": no predictions")
	}
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("%s: %d predictions but %d targets", name, len(predictions), len(targets)))
	}
}
