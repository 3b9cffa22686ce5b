package engine

import (
	"context"
	"testing"
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/journal"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world/worldtest"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	h       *worldtest.Harness
	journal *journal.Journal
	engine  *Engine
}

// newFixture binds a single always-firing modifier that schedules a
// deferred strike, so tests can observe both dispatch and ticks
func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	h := worldtest.NewHarness(t)
	j := journal.New(h.Logger, 16)

	d, err := dispatch.New(dispatch.Options{
		World:  h.World,
		Tags:   h.Tags,
		Tasks:  h.Tasks,
		Rand:   h.Rand,
		Logger: h.Logger,
		Sink:   j,
	})
	require.NoError(t, err)

	strike := catalog.Independent("strike_later", 1, func(c *dispatch.Context) error {
		at, w := c.Event.Location, c.World
		_, err := c.Tasks.ScheduleOnce(2, func() error { return w.StrikeLightning(at) })
		return err
	})
	cat, err := catalog.New("test", []catalog.Modifier[*dispatch.Context]{strike})
	require.NoError(t, err)
	require.NoError(t, d.Bind(event.BlockBreak, dispatch.Route{Name: "test", Catalog: cat}))

	e, err := New(h.Logger, d, cfg)
	require.NoError(t, err)
	return &fixture{h: h, journal: j, engine: e}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, nil, Config{})
	assert.True(t, chaoserr.IsInvalidArgument(err))

	f := newFixture(t, Config{})
	assert.Equal(t, time.Second/DefaultTickRateHz, f.engine.Interval())
	assert.Equal(t, DefaultInboxSize, cap(f.engine.inbox))

	d, err := dispatch.New(dispatch.Options{World: world.NewNullExecutor(nil)})
	require.NoError(t, err)
	_, err = New(nil, d, Config{TickRateHz: -1})
	assert.True(t, chaoserr.IsInvalidArgument(err))
}

func TestHandle_StampsTick(t *testing.T) {
	f := newFixture(t, Config{})

	f.engine.Step()
	f.engine.Step()
	out := f.engine.Handle(context.Background(), event.NewBlockBreak(world.At("world", 0, 64, 0), world.MaterialStone, 0))

	assert.Equal(t, uint64(2), out.Tick)
	assert.Equal(t, []string{"strike_later"}, out.Applied)
	assert.Equal(t, uint64(1), f.engine.Handled())

	f.engine.Step()
	assert.Zero(t, f.h.Ops("strike_lightning"))
	f.engine.Step()
	assert.Equal(t, 1, f.h.Ops("strike_lightning"))
	assert.Equal(t, uint64(4), f.engine.Ticks())
}

func TestRun_DispatchesAndTicks(t *testing.T) {
	f := newFixture(t, Config{TickRateHz: 500, InboxSize: 4})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.engine.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.engine.Submit(ctx, event.NewBlockBreak(world.At("world", float64(i), 64, 0), world.MaterialStone, 0)))
	}

	assert.Eventually(t, func() bool {
		return f.journal.Len() == 3 && f.h.Ops("strike_lightning") == 3
	}, 2*time.Second, 5*time.Millisecond)

	f.engine.Stop()
	require.NoError(t, <-done)

	outs := f.journal.Outcomes()
	require.Len(t, outs, 3)
	for _, out := range outs {
		assert.Equal(t, dispatch.StateDone, out.State)
	}
	assert.Equal(t, uint64(3), f.engine.Handled())
	assert.Positive(t, f.engine.Ticks())
}

func TestRun_ContextCancel(t *testing.T) {
	f := newFixture(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.engine.Run(ctx) }()
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSubmit_AfterStop(t *testing.T) {
	f := newFixture(t, Config{InboxSize: 1})
	f.engine.Stop()
	f.engine.Stop()

	err := f.engine.Submit(context.Background(), event.New(event.BlockBreak))
	assert.True(t, chaoserr.IsInternal(err))
	assert.Error(t, f.engine.Submit(context.Background(), nil))
}

func TestSubmit_FullInbox(t *testing.T) {
	f := newFixture(t, Config{InboxSize: 1})

	assert.True(t, f.engine.TrySubmit(event.New(event.BlockBreak)))
	assert.False(t, f.engine.TrySubmit(event.New(event.BlockBreak)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.engine.Submit(ctx, event.New(event.BlockBreak)), context.DeadlineExceeded)
}
