package worldtest

import (
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/scheduler"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Harness wires an in-memory world, a tag store, a scheduler and scripted
// rolls for scenario tests
type Harness struct {
	t *testing.T

	Logger *zap.Logger
	World  *world.NullExecutor
	Tags   *tags.Store[world.EntityID]
	Tasks  *scheduler.Scheduler
	Rand   *rng.Scripted

	// TaskErrors collects deferred task failures in the order they happened
	TaskErrors []error
}

// NewHarness creates a harness with a single world named "world" and an
// unbounded call log
func NewHarness(t *testing.T, opts ...world.NullOption) *Harness {
	logger := zaptest.NewLogger(t)

	h := &Harness{
		t:      t,
		Logger: logger,
		Tags:   tags.NewStore[world.EntityID](logger),
		Rand:   rng.NewScripted(),
	}
	h.World = world.NewNullExecutor(logger, append([]world.NullOption{world.WithCallLimit(0)}, opts...)...)
	h.Tasks = scheduler.New(logger, scheduler.WithErrorSink(func(err error) {
		h.TaskErrors = append(h.TaskErrors, err)
	}))
	return h
}

// Place adds an entity of kind at x,y,z in the main world
func (h *Harness) Place(kind world.EntityKind, x, y, z float64) world.Entity {
	worlds, _ := h.World.Worlds()
	if len(worlds) == 0 {
		h.t.Fatalf("harness has no worlds")
	}
	e := world.Entity{Kind: kind, Location: world.At(worlds[0], x, y, z)}
	e.ID = h.World.Add(e)
	return e
}

// Tag sets a tag on subject and fails the test on error
func (h *Harness) Tag(subject world.EntityID, key tags.Key, value tags.Value) {
	if err := h.Tags.Set(subject, key, value); err != nil {
		h.t.Fatalf("failed to tag %s: %v", subject, err)
	}
}

// RunTicks advances the scheduler n ticks
func (h *Harness) RunTicks(n int) {
	for i := 0; i < n; i++ {
		h.Tasks.Tick()
	}
}

// Ops returns how many times op was recorded
func (h *Harness) Ops(op string) int {
	return len(h.World.CallsTo(op))
}

// State returns the full state of an entity and fails the test if it is gone
func (h *Harness) State(id world.EntityID) world.EntityState {
	st, ok := h.World.Inspect(id)
	if !ok {
		h.t.Fatalf("entity %s not found", id)
	}
	return st
}

// Exists reports whether an entity is still in the world
func (h *Harness) Exists(id world.EntityID) bool {
	_, ok := h.World.Entity(id)
	return ok
}
