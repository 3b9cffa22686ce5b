package dispatch

import (
	"context"
	"fmt"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/scheduler"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"

// Route binds a catalog to the events of one type it applies to.
// A nil Match accepts every event.
type Route struct {
	Name    string
	Match   func(ev *event.Event) bool
	Catalog *catalog.Catalog[*Context]
}

// Options configures a Dispatcher. World is required; the rest default to
// fresh components.
type Options struct {
	World  world.Executor
	Tags   *tags.Store[world.EntityID]
	Tasks  *scheduler.Scheduler
	Rand   rng.Source
	Logger *zap.Logger
	Sink   Sink
	Tracer trace.Tracer
}

// Dispatcher binds incoming events to their catalogs and applies the chosen
// modifiers. It is driven by a single event loop and is not safe for
// concurrent Dispatch calls.
type Dispatcher struct {
	world  world.Executor
	tags   *tags.Store[world.EntityID]
	tasks  *scheduler.Scheduler
	rand   rng.Source
	logger *zap.Logger
	sink   Sink
	tracer trace.Tracer

	routes map[event.Type][]Route
}

// New creates a dispatcher with no routes
func New(opts Options) (*Dispatcher, error) {
	if opts.World == nil {
		return nil, chaoserr.InvalidArgumentf("dispatcher requires a world executor")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Tags == nil {
		opts.Tags = tags.NewStore[world.EntityID](opts.Logger)
	}
	if opts.Tasks == nil {
		opts.Tasks = scheduler.New(opts.Logger)
	}
	if opts.Rand == nil {
		opts.Rand = rng.NewFromTime()
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(tracerName)
	}

	return &Dispatcher{
		world:  opts.World,
		tags:   opts.Tags,
		tasks:  opts.Tasks,
		rand:   opts.Rand,
		logger: opts.Logger,
		sink:   opts.Sink,
		tracer: opts.Tracer,
		routes: make(map[event.Type][]Route),
	}, nil
}

// Tags returns the tag store effects write to
func (d *Dispatcher) Tags() *tags.Store[world.EntityID] {
	return d.tags
}

// Tasks returns the scheduler deferred effects are registered with
func (d *Dispatcher) Tasks() *scheduler.Scheduler {
	return d.tasks
}

// Bind appends routes for an event type. Routes run in bind order.
func (d *Dispatcher) Bind(t event.Type, routes ...Route) error {
	for _, r := range routes {
		if r.Catalog == nil {
			return chaoserr.InvalidArgumentf("route %q for %s has no catalog", r.Name, t)
		}
	}
	d.routes[t] = append(d.routes[t], routes...)

	for _, r := range routes {
		d.logger.Debug("bound catalog",
			zap.String("event_type", string(t)),
			zap.String("route", r.Name),
			zap.String("catalog", r.Catalog.Name()))
	}
	return nil
}

// Routes returns the routes bound to an event type
func (d *Dispatcher) Routes(t event.Type) []Route {
	return append([]Route(nil), d.routes[t]...)
}

type pick struct {
	catalog  string
	modifier catalog.Modifier[*Context]
}

// Dispatch resolves and applies the modifiers for ev. It always returns an
// outcome in StateDone; failing effects are recorded, never propagated.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *event.Event) Outcome {
	_, span := d.tracer.Start(ctx, "chaos.dispatch",
		trace.WithAttributes(
			attribute.String("event.id", ev.ID),
			attribute.String("event.type", string(ev.Type)),
			attribute.Int64("event.tick", int64(ev.Tick)),
		))
	defer span.End()

	out := Outcome{
		EventID: ev.ID,
		Type:    ev.Type,
		Tick:    ev.Tick,
		State:   StateReceived,
		Event:   ev,
	}

	picks := d.resolve(ev)
	for _, p := range picks {
		out.Selected = append(out.Selected, Selection{Catalog: p.catalog, Modifier: p.modifier.ID})
	}
	d.advance(&out, StateResolved)

	c := &Context{
		Event:  ev,
		World:  d.world,
		Tags:   d.tags,
		Tasks:  d.tasks,
		Rand:   d.rand,
		Logger: d.logger,
	}

	for _, p := range picks {
		if p.modifier.IsNoop() {
			continue
		}
		c.Modifier = p.modifier.ID
		c.Logger = d.logger.With(
			zap.String("event_id", ev.ID),
			zap.String("modifier_id", p.modifier.ID))

		err := apply(c, p.modifier)
		switch {
		case err == nil:
			out.Applied = append(out.Applied, p.modifier.ID)
		case chaoserr.IsPreconditionSkip(err):
			out.Skipped = append(out.Skipped, p.modifier.ID)
			d.logger.Debug("modifier skipped",
				zap.String("event_id", ev.ID),
				zap.String("modifier_id", p.modifier.ID),
				zap.Error(err))
		default:
			out.Failed = append(out.Failed, Failure{
				Catalog:  p.catalog,
				Modifier: p.modifier.ID,
				Error:    err.Error(),
				Code:     string(chaoserr.GetCode(err)),
			})
			span.RecordError(err, trace.WithAttributes(attribute.String("modifier.id", p.modifier.ID)))
			d.logger.Warn("modifier failed",
				zap.String("event_id", ev.ID),
				zap.String("event_type", string(ev.Type)),
				zap.String("modifier_id", p.modifier.ID),
				zap.Error(err))
		}
	}
	d.advance(&out, StateApplied)

	if ev.DestroysSubject() && ev.Subject.ID != "" {
		out.TagsCleared = d.tags.RemoveAll(ev.Subject.ID)
	}
	d.advance(&out, StateDone)

	span.SetAttributes(
		attribute.Int("modifiers.applied", len(out.Applied)),
		attribute.Int("modifiers.skipped", len(out.Skipped)),
		attribute.Int("modifiers.failed", len(out.Failed)),
	)
	if len(out.Failed) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d modifiers failed", len(out.Failed)))
	}

	if d.sink != nil {
		d.sink.Record(out)
	}
	return out
}

func (d *Dispatcher) resolve(ev *event.Event) []pick {
	var picks []pick
	for _, r := range d.routes[ev.Type] {
		if r.Match != nil && !r.Match(ev) {
			continue
		}
		for _, m := range r.Catalog.Resolve(d.rand) {
			picks = append(picks, pick{catalog: r.Catalog.Name(), modifier: m})
		}
	}
	return picks
}

func (d *Dispatcher) advance(out *Outcome, to State) {
	d.logger.Debug("dispatch state",
		zap.String("event_id", out.EventID),
		zap.String("from", out.State.String()),
		zap.String("to", to.String()))
	out.State = to
}

func apply(c *Context, m catalog.Modifier[*Context]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chaoserr.Internalf("modifier %s panicked: %v", m.ID, r)
		}
	}()
	return m.Effect(c)
}
