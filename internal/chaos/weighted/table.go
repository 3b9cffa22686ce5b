package weighted

import (
	"math"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

// Entry is one labeled option of a weighted table
type Entry[T comparable] struct {
	ID     T
	Weight float64
}

// Table selects one entry per draw with probability weight/total.
// Ties at range boundaries go to the entry registered first.
type Table[T comparable] struct {
	entries []Entry[T]
	total   float64
}

// New validates the entries and builds an immutable table.
// Fails with invalid_distribution when the table is empty, a weight is
// negative or not finite, or all weights are zero.
func New[T comparable](entries ...Entry[T]) (*Table[T], error) {
	if len(entries) == 0 {
		return nil, chaoserr.InvalidDistributionf("weighted table has no entries")
	}

	total := 0.0
	for _, e := range entries {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, chaoserr.InvalidDistributionf("entry %v has non-finite weight", e.ID).
				WithMeta("entry", e.ID)
		}
		if e.Weight < 0 {
			return nil, chaoserr.InvalidDistributionf("entry %v has negative weight %v", e.ID, e.Weight).
				WithMeta("entry", e.ID)
		}
		total += e.Weight
	}
	if total <= 0 {
		return nil, chaoserr.InvalidDistributionf("total weight is %v, must be > 0", total)
	}

	return &Table[T]{
		entries: append([]Entry[T](nil), entries...),
		total:   total,
	}, nil
}

// Select draws r in [0, total) from src and returns the matching entry.
// ok is false only when floating-point error lets r run past the last
// entry; callers treat that the same as selecting the no-op entry.
func (t *Table[T]) Select(src rng.Source) (id T, ok bool) {
	return t.Pick(src.Uniform(0, t.total))
}

// Pick walks the entries in registration order, subtracting each weight
// from roll, and returns the first entry where roll < weight.
func (t *Table[T]) Pick(roll float64) (id T, ok bool) {
	for _, e := range t.entries {
		if roll < e.Weight {
			return e.ID, true
		}
		roll -= e.Weight
	}
	var zero T
	return zero, false
}

// Total returns the sum of all weights
func (t *Table[T]) Total() float64 {
	return t.total
}

// Len returns the number of entries
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Probability returns weight/total for id, or 0 when id is not in the table
func (t *Table[T]) Probability(id T) float64 {
	for _, e := range t.entries {
		if e.ID == id {
			return e.Weight / t.total
		}
	}
	return 0
}

// Entries returns a copy of the entries in registration order
func (t *Table[T]) Entries() []Entry[T] {
	return append([]Entry[T](nil), t.entries...)
}
