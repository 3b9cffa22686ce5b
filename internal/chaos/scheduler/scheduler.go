package scheduler

import (
	"fmt"

	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle state of a deferred task.
// scheduled -> ticking -> done | cancelled | failed
type State int

const (
	StateScheduled State = iota
	StateTicking
	StateDone
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateTicking:
		return "ticking"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further callbacks can run in this state
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled || s == StateFailed
}

// ErrorSink receives deferred task failures
type ErrorSink func(err error)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithErrorSink routes task failures to sink in addition to the log
func WithErrorSink(sink ErrorSink) Option {
	return func(s *Scheduler) {
		s.sink = sink
	}
}

type task struct {
	id    string
	seq   uint64
	state State
	dueAt uint64

	// one-shot
	action func() error

	// periodic-then-terminal
	periodic   bool
	period     uint64
	remaining  int
	onTick     func(remaining int) error
	onTerminal func() error
}

// Scheduler runs deferred tasks against a logical tick clock.
//
// Scheduler does no locking. Tick, the Schedule calls and Cancel must all be
// made from the goroutine that drives the clock; callbacks run on that
// goroutine and may schedule or cancel tasks themselves.
type Scheduler struct {
	now     uint64
	nextSeq uint64
	tasks   []*task
	logger  *zap.Logger
	sink    ErrorSink
}

// New creates a scheduler at tick 0
func New(logger *zap.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current tick
func (s *Scheduler) Now() uint64 {
	return s.now
}

// ScheduleOnce runs action once, delay ticks from now.
// A delay of 0 fires on the next tick.
func (s *Scheduler) ScheduleOnce(delay int, action func() error) (*Handle, error) {
	if action == nil {
		return nil, chaoserr.InvalidArgumentf("one-shot task has no action")
	}
	if delay < 0 {
		return nil, chaoserr.InvalidArgumentf("delay must be >= 0, got %d", delay)
	}
	if delay == 0 {
		delay = 1
	}

	t := s.add(&task{
		dueAt:  s.now + uint64(delay),
		action: action,
	})

	s.logger.Debug("scheduled one-shot task",
		zap.String("task_id", t.id),
		zap.Uint64("tick", s.now),
		zap.Uint64("due_at", t.dueAt))
	return &Handle{t: t, s: s}, nil
}

// SchedulePeriodic calls onTick every period ticks, repeat times, passing the
// countdown repeat, repeat-1, ... 1. One period after the last onTick, onTerminal
// runs once. The first onTick fires on the next tick. Either callback may be nil.
func (s *Scheduler) SchedulePeriodic(period, repeat int, onTick func(remaining int) error, onTerminal func() error) (*Handle, error) {
	if period < 1 {
		return nil, chaoserr.InvalidArgumentf("period must be >= 1, got %d", period)
	}
	if repeat < 0 {
		return nil, chaoserr.InvalidArgumentf("repeat count must be >= 0, got %d", repeat)
	}

	t := s.add(&task{
		dueAt:      s.now + 1,
		periodic:   true,
		period:     uint64(period),
		remaining:  repeat,
		onTick:     onTick,
		onTerminal: onTerminal,
	})

	s.logger.Debug("scheduled periodic task",
		zap.String("task_id", t.id),
		zap.Uint64("tick", s.now),
		zap.Int("period", period),
		zap.Int("repeat", repeat))
	return &Handle{t: t, s: s}, nil
}

func (s *Scheduler) add(t *task) *task {
	t.id = uuid.NewString()
	t.seq = s.nextSeq
	s.nextSeq++
	t.state = StateScheduled
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel stops the task behind h. It reports whether the task was still live.
// Cancelling a terminal task is a no-op.
func (s *Scheduler) Cancel(h *Handle) bool {
	if h == nil || h.t == nil || h.t.state.Terminal() {
		return false
	}
	h.t.state = StateCancelled
	s.logger.Debug("cancelled task",
		zap.String("task_id", h.t.id),
		zap.Uint64("tick", s.now))
	return true
}

// CancelAll cancels every live task and returns how many were cancelled
func (s *Scheduler) CancelAll() int {
	n := 0
	for _, t := range s.tasks {
		if !t.state.Terminal() {
			t.state = StateCancelled
			n++
		}
	}
	s.tasks = s.tasks[:0]
	if n > 0 {
		s.logger.Debug("cancelled all tasks", zap.Int("cancelled", n))
	}
	return n
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.state.Terminal() {
			n++
		}
	}
	return n
}

// Tick advances the clock by one and runs every task due at the new tick,
// in the order the tasks were scheduled. Tasks scheduled by a callback during
// this tick are not run until a later tick. Returns the number of callbacks run.
func (s *Scheduler) Tick() int {
	s.now++

	// snapshot: callbacks may append to s.tasks
	due := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.state.Terminal() && t.dueAt <= s.now {
			due = append(due, t)
		}
	}

	fired := 0
	for _, t := range due {
		// an earlier callback in this tick may have cancelled it
		if t.state.Terminal() {
			continue
		}
		s.fire(t)
		fired++
	}

	s.compact()
	return fired
}

func (s *Scheduler) fire(t *task) {
	t.state = StateTicking

	var err error
	switch {
	case !t.periodic:
		err = s.call(t.action)
		if err == nil && t.state == StateTicking {
			t.state = StateDone
		}

	case t.remaining > 0:
		remaining := t.remaining
		t.remaining--
		if t.onTick != nil {
			err = s.call(func() error { return t.onTick(remaining) })
		}
		if err == nil && t.state == StateTicking {
			t.dueAt = s.now + t.period
		}

	default:
		if t.onTerminal != nil {
			err = s.call(t.onTerminal)
		}
		if err == nil && t.state == StateTicking {
			t.state = StateDone
		}
	}

	if err != nil {
		s.fail(t, err)
		return
	}

	if t.state.Terminal() {
		s.logger.Debug("task finished",
			zap.String("task_id", t.id),
			zap.Stringer("state", t.state),
			zap.Uint64("tick", s.now))
	}
}

// call runs fn and converts a panic into an error
func (s *Scheduler) call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// fail reports cause to the sink. A task cancelled by its own callback stays
// cancelled; the error is still reported.
func (s *Scheduler) fail(t *task, cause error) {
	if t.state != StateCancelled {
		t.state = StateFailed
	}
	err := chaoserr.DeferredTaskFailure(cause, t.id).WithMeta("tick", s.now)

	s.logger.Warn("deferred task failed",
		zap.String("task_id", t.id),
		zap.Uint64("tick", s.now),
		zap.Error(cause))

	if s.sink != nil {
		s.sink(err)
	}
}

// compact drops terminal tasks while keeping scheduling order
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.state.Terminal() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
