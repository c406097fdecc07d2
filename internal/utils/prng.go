// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's standard random number generator so that every
// random draw in the game goes through a single seedable source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed. A seed of 0
// means "use the current time", i.e. a non-reproducible run.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Range returns a random int in [min, max], inclusive on both ends.
func (s *PRNGService) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Sign returns -1 or 1 with equal probability.
func (s *PRNGService) Sign() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
