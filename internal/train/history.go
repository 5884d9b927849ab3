package train

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// History records the loss of every completed epoch.
type History struct {
	Losses       []float64
	StoppedEarly bool // Patience ran out before the last epoch
}

// Len returns the number of completed epochs.
func (h History) Len() int {
	return len(h.Losses)
}

// Final returns the last recorded loss, or NaN if none.
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return math.NaN()
	}
	return h.Losses[len(h.Losses)-1]
}

// Best returns the smallest recorded loss and its epoch, or (NaN, -1).
func (h History) Best() (float64, int) {
	if len(h.Losses) == 0 {
		return math.NaN(), -1
	}
	i := floats.MinIdx(h.Losses)
	return h.Losses[i], i
}

// MeanLoss returns the mean loss over all epochs, or NaN if none.
func (h History) MeanLoss() float64 {
	if len(h.Losses) == 0 {
		return math.NaN()
	}
	return stat.Mean(h.Losses, nil)
}
