package utils

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the only way randomness enters the simulation. Tests inject
// a seeded PRNGService (or a scripted fake) to make ticks reproducible.
type RandomSource interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Range returns a number in [lo, hi). It returns lo when hi <= lo.
	Range(lo, hi float64) float64
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// PRNGService wraps a seeded generator so every random draw in the game is
// reproducible from one seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service seeded with seed. A zero seed picks one
// from the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Bool returns true with probability p. p <= 0 never fires, p >= 1 always
// fires.
func (s *PRNGService) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
