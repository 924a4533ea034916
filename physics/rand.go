package physics

import "math/rand/v2"

// RandomSource is the uniform generator every randomized operation draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Rand is a deterministic PCG-backed RandomSource.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

// NewRand creates a RandomSource that reproduces the same sequence for the same seed.
func NewRand(seed uint64) *Rand {
	return &Rand{seed: seed, r: rand.New(rand.NewPCG(seed, 0))}
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() uint64 {
	if r == nil {
		return 0
	}
	return r.seed
}

func (r *Rand) Float64() float64 { return r.r.Float64() }

func (r *Rand) IntN(n int) int { return r.r.IntN(n) }

// uniform draws from [lo, hi).
func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
