package scheduler

// Handle is a caller's reference to a scheduled task. It lets the caller
// cancel or observe the task; the Scheduler owns the task's lifetime.
type Handle struct {
	t *task
	s *Scheduler
}

// ID returns the task identifier
func (h *Handle) ID() string {
	return h.t.id
}

// Cancel stops the task. Safe to call repeatedly and from inside the task's
// own callbacks.
func (h *Handle) Cancel() bool {
	return h.s.Cancel(h)
}

// State returns the task's current lifecycle state
func (h *Handle) State() State {
	return h.t.state
}

// Done reports whether the task reached a terminal state
func (h *Handle) Done() bool {
	return h.t.state.Terminal()
}

// DueAt returns the tick of the task's next callback
func (h *Handle) DueAt() uint64 {
	return h.t.dueAt
}

// Remaining returns the onTick calls still to come for a periodic task,
// or 1 for a live one-shot task. Terminal tasks report 0.
func (h *Handle) Remaining() int {
	if h.t.state.Terminal() {
		return 0
	}
	if !h.t.periodic {
		return 1
	}
	return h.t.remaining
}
