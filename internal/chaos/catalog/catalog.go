package catalog

import (
	"fmt"
	"math"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/weighted"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

// Mode decides how a modifier competes with the rest of its catalog
type Mode int

const (
	// ModeExclusive modifiers share one weighted draw; at most one fires per event
	ModeExclusive Mode = iota
	// ModeIndependent modifiers each roll against their own probability
	ModeIndependent
)

func (m Mode) String() string {
	switch m {
	case ModeExclusive:
		return "exclusive"
	case ModeIndependent:
		return "independent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Procedure applies a modifier's effect to the event context
type Procedure[C any] func(ctx C) error

// Modifier is a named rule in a catalog. For exclusive modifiers Weight is a
// relative weight; for independent modifiers it is a probability in [0,1].
type Modifier[C any] struct {
	ID     string
	Weight float64
	Mode   Mode
	Effect Procedure[C]
}

// Noop builds the designated no-op entry of an exclusive catalog
func Noop[C any](id string, weight float64) Modifier[C] {
	return Modifier[C]{ID: id, Weight: weight, Mode: ModeExclusive}
}

// Exclusive builds an exclusive modifier
func Exclusive[C any](id string, weight float64, effect Procedure[C]) Modifier[C] {
	return Modifier[C]{ID: id, Weight: weight, Mode: ModeExclusive, Effect: effect}
}

// Independent builds an independent modifier that fires with probability p
func Independent[C any](id string, p float64, effect Procedure[C]) Modifier[C] {
	return Modifier[C]{ID: id, Weight: p, Mode: ModeIndependent, Effect: effect}
}

// IsNoop reports whether the modifier has no effect
func (m Modifier[C]) IsNoop() bool {
	return m.Effect == nil
}

// Option configures catalog construction
type Option func(*options)

type options struct {
	weights map[string]float64
}

// WithWeights overrides modifier weights by id before validation.
// Unknown ids fail construction.
func WithWeights(weights map[string]float64) Option {
	return func(o *options) {
		if len(weights) == 0 {
			return
		}
		if o.weights == nil {
			o.weights = make(map[string]float64, len(weights))
		}
		for id, w := range weights {
			o.weights[id] = w
		}
	}
}

// Catalog is the immutable modifier table for one event type.
// Built once at startup; Resolve is safe for concurrent use.
type Catalog[C any] struct {
	name        string
	modifiers   []Modifier[C]
	exclusive   *weighted.Table[int]
	independent []int
}

// New validates mods and builds a catalog. Validation failures are
// invalid_distribution errors, except an override naming an unknown modifier,
// which is invalid_argument.
func New[C any](name string, mods []Modifier[C], opts ...Option) (*Catalog[C], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(mods) == 0 {
		return nil, chaoserr.InvalidDistributionf("catalog %s has no modifiers", name).
			WithMeta("catalog", name)
	}

	c := &Catalog[C]{
		name:      name,
		modifiers: append([]Modifier[C](nil), mods...),
	}

	index := make(map[string]int, len(mods))
	for i, m := range c.modifiers {
		if m.ID == "" {
			return nil, chaoserr.InvalidDistributionf("catalog %s: modifier %d has no id", name, i).
				WithMeta("catalog", name)
		}
		if _, dup := index[m.ID]; dup {
			return nil, chaoserr.InvalidDistributionf("catalog %s: duplicate modifier id %s", name, m.ID).
				WithMeta("catalog", name).
				WithMeta("modifier_id", m.ID)
		}
		index[m.ID] = i
	}

	for id, w := range o.weights {
		i, ok := index[id]
		if !ok {
			return nil, chaoserr.InvalidArgumentf("catalog %s: weight override for unknown modifier %s", name, id).
				WithMeta("catalog", name).
				WithMeta("modifier_id", id)
		}
		c.modifiers[i].Weight = w
	}

	var exclusive []weighted.Entry[int]
	for i, m := range c.modifiers {
		if math.IsNaN(m.Weight) || math.IsInf(m.Weight, 0) || m.Weight < 0 {
			return nil, chaoserr.InvalidDistributionf("catalog %s: modifier %s has invalid weight %v", name, m.ID, m.Weight).
				WithMeta("catalog", name).
				WithMeta("modifier_id", m.ID)
		}

		switch m.Mode {
		case ModeExclusive:
			exclusive = append(exclusive, weighted.Entry[int]{ID: i, Weight: m.Weight})
		case ModeIndependent:
			if m.Weight > 1 {
				return nil, chaoserr.InvalidDistributionf("catalog %s: modifier %s probability %v exceeds 1", name, m.ID, m.Weight).
					WithMeta("catalog", name).
					WithMeta("modifier_id", m.ID)
			}
			c.independent = append(c.independent, i)
		default:
			return nil, chaoserr.InvalidDistributionf("catalog %s: modifier %s has unknown mode %v", name, m.ID, m.Mode).
				WithMeta("catalog", name)
		}
	}

	if len(exclusive) > 0 {
		table, err := weighted.New(exclusive...)
		if err != nil {
			return nil, chaoserr.Wrapf(err, "catalog %s", name).WithMeta("catalog", name)
		}
		c.exclusive = table
	}

	return c, nil
}

// MustNew is New for static tables; it panics on a misconfigured catalog
func MustNew[C any](name string, mods []Modifier[C], opts ...Option) *Catalog[C] {
	c, err := New(name, mods, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog name
func (c *Catalog[C]) Name() string {
	return c.name
}

// Modifiers returns a copy of the modifiers in registration order
func (c *Catalog[C]) Modifiers() []Modifier[C] {
	return append([]Modifier[C](nil), c.modifiers...)
}

// Lookup returns the modifier with the given id
func (c *Catalog[C]) Lookup(id string) (Modifier[C], bool) {
	for _, m := range c.modifiers {
		if m.ID == id {
			return m, true
		}
	}
	return Modifier[C]{}, false
}

// Resolve chooses the modifiers that fire for one event: at most one
// exclusive modifier from a single weighted draw, plus every independent
// modifier whose own trial succeeds. The result is in registration order.
// A selected no-op entry is included so callers can record it.
func (c *Catalog[C]) Resolve(src rng.Source) []Modifier[C] {
	chosen := make([]bool, len(c.modifiers))

	if c.exclusive != nil {
		if i, ok := c.exclusive.Select(src); ok {
			chosen[i] = true
		}
	}

	for _, i := range c.independent {
		p := c.modifiers[i].Weight
		switch {
		case p >= 1:
			chosen[i] = true
		case p <= 0:
		default:
			chosen[i] = src.Chance(p)
		}
	}

	var out []Modifier[C]
	for i, ok := range chosen {
		if ok {
			out = append(out, c.modifiers[i])
		}
	}
	return out
}
