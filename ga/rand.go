package ga

import "math/rand"

// Rand is the source of randomness threaded through every stochastic
// operation (initialization, mutation, mating, mate selection).
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source suitable for reproducible runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
