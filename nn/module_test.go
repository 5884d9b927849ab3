// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/born-ml/micrograd/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	init := nn.Uniform(nn.NewRand(1), -1, 1)

	tests := []struct {
		name   string
		module nn.Module
		params int
	}{
		{"Layer", nn.NewLayer(3, 2, init), 8},
		{"MLP", nn.NewMLP([]int{3, 4, 1}, init), 21},
		{"Sequential", nn.NewSequential(nn.NewLayer(3, 2, init), nn.NewLayer(2, 1, init)), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.module.Forward(nn.Values(1, 2, 3))
			assert.NotEmpty(t, out)
			assert.Len(t, tt.module.Parameters(), tt.params)
		})
	}
}

// TestPublicAPI_TrainingStep runs one full step through the facades.
func TestPublicAPI_TrainingStep(t *testing.T) {
	model := nn.NewMLP([]int{2, 3, 1}, nn.Uniform(nn.NewRand(2), -1, 1))
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})

	x := nn.Values(0.5, -0.5)
	y := nn.Values(0.25)

	before := nn.MSELoss(model.Forward(x), y)
	opt.ZeroGrad()
	autodiff.Backward(before)
	opt.Step()

	after := nn.MSELoss(model.Forward(x), y)
	require.False(t, before == after)
	assert.Less(t, after.Data(), before.Data())
}
