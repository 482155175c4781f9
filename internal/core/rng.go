package core

import "math/rand"

// RNG is the source of randomness consumed by the simulation.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// NewRNG returns a seeded RNG. Equal seeds replay identical runs.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// RangeInt returns a uniform integer in [lo, hi]. If hi <= lo it returns lo.
func RangeInt(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
