// Package journal records dispatch outcomes: a bounded in-memory history
// with running modifier statistics, optional zstd JSONL streaming, and
// save/load of a whole journal.
package journal

import (
	"sync"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCapacity is the number of outcomes kept when none is configured
const DefaultCapacity = 1024

// Option configures a Journal
type Option func(*Journal)

// WithWriter streams every recorded outcome to w as well
func WithWriter(w *Writer) Option {
	return func(j *Journal) {
		j.writer = w
	}
}

// WithID sets the journal ID used for saved files
func WithID(id string) Option {
	return func(j *Journal) {
		j.id = id
	}
}

// Journal keeps the most recent outcomes in a ring buffer. Statistics
// cover every outcome ever recorded, including evicted ones.
// It implements dispatch.Sink.
type Journal struct {
	id     string
	logger *zap.Logger
	writer *Writer

	mu       sync.RWMutex
	capacity int
	ring     []dispatch.Outcome
	next     int
	full     bool
	stats    Stats
}

// New creates a journal holding up to capacity outcomes
func New(logger *zap.Logger, capacity int, opts ...Option) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	j := &Journal{
		id:       uuid.NewString(),
		logger:   logger,
		capacity: capacity,
		ring:     make([]dispatch.Outcome, capacity),
		stats:    newStats(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// ID returns the journal ID
func (j *Journal) ID() string {
	return j.id
}

// Record stores an outcome, evicting the oldest one when full
func (j *Journal) Record(out dispatch.Outcome) {
	j.mu.Lock()
	j.ring[j.next] = out
	j.next = (j.next + 1) % j.capacity
	if j.next == 0 {
		j.full = true
	}
	j.stats.add(out)
	j.mu.Unlock()

	if j.writer == nil {
		return
	}
	if err := j.writer.Write(out); err != nil {
		j.logger.Warn("failed to stream outcome",
			zap.String("event_id", out.EventID),
			zap.Error(err))
	}
}

// Outcomes returns the retained outcomes, oldest first
func (j *Journal) Outcomes() []dispatch.Outcome {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if !j.full {
		return append([]dispatch.Outcome(nil), j.ring[:j.next]...)
	}
	out := make([]dispatch.Outcome, 0, j.capacity)
	out = append(out, j.ring[j.next:]...)
	return append(out, j.ring[:j.next]...)
}

// Len returns the number of retained outcomes
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.full {
		return j.capacity
	}
	return j.next
}

// Capacity returns the maximum number of retained outcomes
func (j *Journal) Capacity() int {
	return j.capacity
}

// Stats returns a copy of the running statistics
func (j *Journal) Stats() Stats {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.stats.clone()
}

// Close flushes and closes the attached writer, if any
func (j *Journal) Close() error {
	if j.writer == nil {
		return nil
	}
	return j.writer.Close()
}

var _ dispatch.Sink = (*Journal)(nil)
