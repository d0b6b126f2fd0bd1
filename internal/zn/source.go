package zn

import "math/rand/v2"

// Source supplies the uniform draws a sweep consumes. Implementations are
// not safe for concurrent use.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// NewSource returns the default PCG-backed source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}
