package rng

import (
	"math/rand/v2"
	"time"
)

// Source provides the random draws a resolution consumes.
// Every call is an independent draw.
type Source interface {
	// Uniform returns a float in [lo, hi). Returns lo when hi <= lo.
	Uniform(lo, hi float64) float64

	// Chance performs a Bernoulli trial with probability p.
	Chance(p float64) bool

	// Intn returns an int in [0, n). Returns 0 when n <= 0.
	Intn(n int) int
}

// seededSource implements Source on a PCG generator
type seededSource struct {
	r *rand.Rand
}

// NewSeeded creates a deterministic source for the given seed
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromTime creates a source seeded from the wall clock
func NewFromTime() Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Uniform implements Source.Uniform
func (s *seededSource) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// Chance implements Source.Chance
func (s *seededSource) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Intn implements Source.Intn
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Between returns an int in [lo, hi] inclusive
func Between(src Source, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// PickOne returns a uniformly chosen element of options
func PickOne[T any](src Source, options []T) T {
	return options[src.Intn(len(options))]
}
