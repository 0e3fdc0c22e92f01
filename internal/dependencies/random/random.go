package random

import (
	"math/rand/v2"
	"sync"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Source implements Random on top of math/rand/v2
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source backed by the global generator
func New() *Source {
	return &Source{}
}

// NewSeeded creates a deterministic Source, for reproducible bot matches
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if r.rng == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
