package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. The whole engine draws from a single RNG in a fixed order per
// tick, so seed + tick count fully determine the simulation: the power scan
// draws nothing, every zone visit draws exactly one Perturb before anything
// else, and traffic draws one Word per walk step.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the stream from the provided seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Word returns a random 16-bit value.
func (r *RNG) Word() uint16 {
	return uint16(r.r.Uint32())
}

// Perturb returns a signed perturbation in [-n, n], symmetric about zero.
func (r *RNG) Perturb(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(2*n+1) - n
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
