package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulateGrads(t *testing.T) {
	a, b := NewValue(1), NewValue(2)
	a.grad = 0.5

	accumulateGrads([]*Value{a, b}, []float64{1, 3})
	assert.Equal(t, 1.5, a.grad)
	assert.Equal(t, 3.0, b.grad)
}

func TestAccumulateGrads_CountMismatch(t *testing.T) {
	a, b := NewValue(1), NewValue(2)

	assert.Panics(t, func() { accumulateGrads([]*Value{a, b}, []float64{1}) })
	assert.Panics(t, func() { accumulateGrads([]*Value{a}, []float64{1, 2}) })
}
