package nn

import (
	"math/rand/v2"
)

// Initializer returns the starting value for one parameter.
type Initializer func() float64

// Uniform returns an Initializer drawing from [lo, hi) with rng.
//
// The generator is injected so that training runs are reproducible:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	init := nn.Uniform(rng, -1, 1)
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return func() float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// NewRand returns a PCG generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	//nolint:gosec // Weight initialization is not security-critical.
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Constant returns an Initializer that always yields c.
//
// Useful in tests where exact parameter values matter.
func Constant(c float64) Initializer {
	return func() float64 { return c }
}
