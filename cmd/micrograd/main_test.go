package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"version"}, &out, &out))
	assert.Equal(t, "micrograd "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out, &out))
	assert.Contains(t, out.String(), "Commands:")

	err := run(context.Background(), []string{"serve"}, &out, &out)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"demo"}, &out, &out))

	s := out.String()
	assert.Contains(t, s, "a = Value(1 10)")
	assert.Contains(t, s, "b = Value(2 1)")
	assert.Contains(t, s, "e = Value(5 1)")
	assert.Contains(t, s, "exp(2) = Value(7.38905609893065 0)")
}

func TestRun_Train(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"train", "-epochs", "5", "-seed", "1"}, &stdout, &stderr)
	require.NoError(t, err)

	s := stdout.String()
	assert.Contains(t, s, "initial predictions:")
	assert.Contains(t, s, "epoch: 4 loss:")
	assert.Contains(t, s, "final predictions:")
	assert.Contains(t, stderr.String(), "training finished")
}

func TestRun_TrainBadFlags(t *testing.T) {
	tests := [][]string{
		{"train", "-sizes", "3"},
		{"train", "-sizes", "3,x,1"},
		{"train", "-sizes", "2,4,1"},
		{"train", "-bogus"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), args, &out, &out)
			assert.ErrorIs(t, err, errUsage)
		})
	}

	var out bytes.Buffer
	err := run(context.Background(), []string{"train", "-epochs", "0"}, &out, &out)
	assert.Error(t, err)
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("3, 4,4,1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 4, 1}, sizes)

	_, err = parseSizes("3,0")
	assert.ErrorIs(t, err, errUsage)
}
