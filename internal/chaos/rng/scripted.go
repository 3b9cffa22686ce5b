package rng

import "sync"

// Scripted implements Source with predetermined draws for tests.
//
// Uniform consumes a fraction f in [0,1) and returns lo + f*(hi-lo).
// Chance consumes a queued result. Intn consumes a queued int, clamped to [0,n).
// An exhausted queue yields the zero draw: lo, false and 0.
type Scripted struct {
	mu        sync.Mutex
	fractions []float64
	chances   []bool
	ints      []int

	uniformCalls int
	chanceCalls  int
	intCalls     int
}

// NewScripted creates an empty scripted source
func NewScripted() *Scripted {
	return &Scripted{}
}

// QueueFractions appends uniform fractions
func (s *Scripted) QueueFractions(fractions ...float64) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fractions = append(s.fractions, fractions...)
	return s
}

// QueueChances appends Bernoulli results
func (s *Scripted) QueueChances(results ...bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chances = append(s.chances, results...)
	return s
}

// QueueInts appends Intn results
func (s *Scripted) QueueInts(values ...int) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, values...)
	return s
}

// Uniform implements Source.Uniform
func (s *Scripted) Uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniformCalls++

	if hi <= lo || len(s.fractions) == 0 {
		return lo
	}
	f := s.fractions[0]
	s.fractions = s.fractions[1:]
	return lo + f*(hi-lo)
}

// Chance implements Source.Chance
func (s *Scripted) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chanceCalls++

	if len(s.chances) == 0 {
		return false
	}
	result := s.chances[0]
	s.chances = s.chances[1:]
	return result
}

// Intn implements Source.Intn
func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intCalls++

	if n <= 0 || len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Calls returns how many draws of each kind were made
func (s *Scripted) Calls() (uniform, chance, ints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uniformCalls, s.chanceCalls, s.intCalls
}
