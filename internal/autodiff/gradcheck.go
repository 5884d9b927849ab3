package autodiff

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// GradCheckConfig controls CheckGradients.
type GradCheckConfig struct {
	Step   float64 // Finite-difference step (default: 1e-6)
	AbsTol float64 // Absolute tolerance (default: 1e-5)
	RelTol float64 // Relative tolerance (default: 1e-4)
}

// GradCheckResult holds the comparison for one input.
type GradCheckResult struct {
	Input     *Value
	Analytic  float64 // from Backward
	Numerical float64 // central finite difference
	OK        bool
}

// CheckGradients compares Backward against central finite differences.
//
// build must rebuild the graph from the current data of inputs and return
// its root; it is called once for the analytic pass and twice per input for
// the numerical estimate. Each input's data is restored after probing, and
// each input's gradient is left holding the analytic value.
//
// Example:
//
//	x := autodiff.NewValue(0.5)
//	results := autodiff.CheckGradients(func() *autodiff.Value {
//	    return autodiff.Tanh(x)
//	}, []*autodiff.Value{x}, autodiff.GradCheckConfig{})
func CheckGradients(build func() *Value, inputs []*Value, cfg GradCheckConfig) []GradCheckResult {
	if cfg.Step == 0 {
		cfg.Step = 1e-6
	}
	if cfg.AbsTol == 0 {
		cfg.AbsTol = 1e-5
	}
	if cfg.RelTol == 0 {
		cfg.RelTol = 1e-4
	}

	for _, in := range inputs {
		in.grad = 0
	}
	Backward(build())

	settings := &fd.Settings{Formula: fd.Central, Step: cfg.Step}
	results := make([]GradCheckResult, len(inputs))
	for i, in := range inputs {
		numerical := fd.Derivative(func(x float64) float64 {
			orig := in.data
			in.data = x
			defer func() { in.data = orig }()
			return build().data
		}, in.data, settings)

		results[i] = GradCheckResult{
			Input:     in,
			Analytic:  in.grad,
			Numerical: numerical,
			OK:        scalar.EqualWithinAbsOrRel(in.grad, numerical, cfg.AbsTol, cfg.RelTol),
		}
	}

	return results
}
