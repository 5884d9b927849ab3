package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckGradients_Ops tests every op against finite differences.
func TestCheckGradients_Ops(t *testing.T) {
	x := autodiff.NewValue(0.7)
	y := autodiff.NewValue(-1.3)

	tests := []struct {
		name  string
		build func() *autodiff.Value
	}{
		{"add", func() *autodiff.Value { return autodiff.Add(x, y) }},
		{"mul", func() *autodiff.Value { return autodiff.Mul(x, y) }},
		{"sub", func() *autodiff.Value { return autodiff.Sub(x, y) }},
		{"div", func() *autodiff.Value { return autodiff.Div(x, y) }},
		{"pow", func() *autodiff.Value { return autodiff.Mul(autodiff.Pow(x, 3), y) }},
		{"exp", func() *autodiff.Value { return autodiff.Exp(autodiff.Mul(x, y)) }},
		{"tanh", func() *autodiff.Value { return autodiff.Tanh(autodiff.Add(x, y)) }},
		{"polynomial", func() *autodiff.Value {
			// x³ - 2x² + xy
			return autodiff.Add(
				autodiff.Sub(autodiff.Pow(x, 3), autodiff.Scale(autodiff.Pow(x, 2), 2)),
				autodiff.Mul(x, y),
			)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := autodiff.CheckGradients(tt.build, []*autodiff.Value{x, y}, autodiff.GradCheckConfig{})
			require.Len(t, results, 2)
			for _, r := range results {
				assert.True(t, r.OK, "analytic %v vs numerical %v", r.Analytic, r.Numerical)
			}
		})
	}
}

// TestCheckGradients_RestoresData tests that probing leaves inputs intact.
func TestCheckGradients_RestoresData(t *testing.T) {
	x := autodiff.NewValue(1.25)
	results := autodiff.CheckGradients(func() *autodiff.Value {
		return autodiff.Pow(x, 2)
	}, []*autodiff.Value{x}, autodiff.GradCheckConfig{})

	assert.Equal(t, 1.25, x.Data())
	assert.Equal(t, 2.5, x.Grad())
	assert.InDelta(t, 2.5, results[0].Numerical, 1e-6)
}

// TestCheckGradients_DetectsMismatch tests that a wrong gradient is flagged.
func TestCheckGradients_DetectsMismatch(t *testing.T) {
	x := autodiff.NewValue(2)
	frozen := autodiff.NewValue(0)

	// The graph is built once from the original data, so the numerical
	// estimate sees a constant function while Backward sees x².
	root := autodiff.Pow(x, 2)
	results := autodiff.CheckGradients(func() *autodiff.Value {
		return root
	}, []*autodiff.Value{x, frozen}, autodiff.GradCheckConfig{})

	assert.False(t, results[0].OK)
	assert.True(t, results[1].OK)
}

// TestCheckGradients_RelativeTolerance tests that large gradients are
// compared relative to their magnitude.
func TestCheckGradients_RelativeTolerance(t *testing.T) {
	x := autodiff.NewValue(1000)
	results := autodiff.CheckGradients(func() *autodiff.Value {
		return autodiff.Pow(x, 3)
	}, []*autodiff.Value{x}, autodiff.GradCheckConfig{})

	require.Len(t, results, 1)
	assert.Equal(t, 3e6, results[0].Analytic)
	assert.True(t, results[0].OK, "analytic %v vs numerical %v", results[0].Analytic, results[0].Numerical)
}
