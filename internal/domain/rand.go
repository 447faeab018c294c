package domain

import (
	"math/rand"
	"sync"
)

// rng is the package-level randomness source behind simulated fallback scores
// and fabricated route durations. It mirrors the clock: production uses an
// arbitrary seed, tests pin one via SetRandSeed for reproducible output.
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(rand.Int63()))
)

// SetRandSeed reseeds the package randomness source.
func SetRandSeed(seed uint64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewSource(int64(seed)))
}

// RandFloat returns a uniform random float64 in [lo, hi).
func RandFloat(lo, hi float64) float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return lo + rng.Float64()*(hi-lo)
}

// RandIntn returns a uniform random int in [0, n).
func RandIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
