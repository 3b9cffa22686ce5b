// Package engine hosts a dispatcher on a single goroutine that owns the
// tick clock and the event inbox.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/scheduler"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"go.uber.org/zap"
)

// Defaults match a 20 tick per second world
const (
	DefaultTickRateHz = 20
	DefaultInboxSize  = 256
)

// Config holds the loop settings
type Config struct {
	TickRateHz int
	InboxSize  int
}

// Engine serialises event dispatch and scheduler ticks. Events are
// dispatched as they arrive, ticks fire on the ticker, and both run on the
// goroutine calling Run.
type Engine struct {
	logger     *zap.Logger
	dispatcher *dispatch.Dispatcher
	tasks      *scheduler.Scheduler
	interval   time.Duration

	inbox    chan *event.Event
	stop     chan struct{}
	stopOnce sync.Once

	handled atomic.Uint64
	ticks   atomic.Uint64
}

// New creates an engine around d. Zero config values take the defaults.
func New(logger *zap.Logger, d *dispatch.Dispatcher, cfg Config) (*Engine, error) {
	if d == nil {
		return nil, chaoserr.InvalidArgumentf("engine requires a dispatcher")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TickRateHz < 0 || cfg.InboxSize < 0 {
		return nil, chaoserr.InvalidArgumentf("tick rate and inbox size must not be negative")
	}
	if cfg.TickRateHz == 0 {
		cfg.TickRateHz = DefaultTickRateHz
	}
	if cfg.InboxSize == 0 {
		cfg.InboxSize = DefaultInboxSize
	}

	return &Engine{
		logger:     logger,
		dispatcher: d,
		tasks:      d.Tasks(),
		interval:   time.Second / time.Duration(cfg.TickRateHz),
		inbox:      make(chan *event.Event, cfg.InboxSize),
		stop:       make(chan struct{}),
	}, nil
}

// Run processes events and ticks until ctx is done or Stop is called.
// Events still queued when the loop stops are dropped.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.logger.Info("engine started", zap.Duration("tick_interval", e.interval))
	defer func() {
		e.logger.Info("engine stopped",
			zap.Uint64("events_handled", e.handled.Load()),
			zap.Uint64("ticks", e.ticks.Load()),
			zap.Int("events_dropped", len(e.inbox)))
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.stop:
			return nil
		case ev := <-e.inbox:
			e.Handle(ctx, ev)
		case <-ticker.C:
			e.Step()
		}
	}
}

// Submit queues an event, blocking while the inbox is full
func (e *Engine) Submit(ctx context.Context, ev *event.Event) error {
	if ev == nil {
		return chaoserr.InvalidArgumentf("cannot submit a nil event")
	}
	select {
	case <-e.stop:
		return chaoserr.New(chaoserr.CodeInternal, "engine stopped")
	default:
	}

	select {
	case e.inbox <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stop:
		return chaoserr.New(chaoserr.CodeInternal, "engine stopped")
	}
}

// TrySubmit queues an event without blocking and reports whether it fit
func (e *Engine) TrySubmit(ev *event.Event) bool {
	if ev == nil {
		return false
	}
	select {
	case e.inbox <- ev:
		return true
	default:
		e.logger.Warn("inbox full, dropping event",
			zap.String("event_id", ev.ID),
			zap.String("event_type", string(ev.Type)))
		return false
	}
}

// Handle stamps ev with the current tick and dispatches it. Only call it
// from the goroutine that owns the engine.
func (e *Engine) Handle(ctx context.Context, ev *event.Event) dispatch.Outcome {
	ev.Tick = e.tasks.Now()
	out := e.dispatcher.Dispatch(ctx, ev)
	e.handled.Add(1)
	return out
}

// Step advances the scheduler by one tick. Only call it from the goroutine
// that owns the engine.
func (e *Engine) Step() {
	e.tasks.Tick()
	e.ticks.Add(1)
}

// Stop ends Run. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}

// Handled returns the number of events dispatched so far
func (e *Engine) Handled() uint64 {
	return e.handled.Load()
}

// Ticks returns the number of ticks stepped so far
func (e *Engine) Ticks() uint64 {
	return e.ticks.Load()
}

// Interval returns the time between ticks
func (e *Engine) Interval() time.Duration {
	return e.interval
}
