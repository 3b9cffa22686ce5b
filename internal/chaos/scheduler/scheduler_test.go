package scheduler

import (
	"errors"
	"testing"

	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func advance(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestScheduleOnce_FiresAtDelay(t *testing.T) {
	s := New(zap.NewNop())
	advance(s, 10)
	t0 := s.Now()

	var firedAt []uint64
	h, err := s.ScheduleOnce(5, func() error {
		firedAt = append(firedAt, s.Now())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateScheduled, h.State())
	assert.Equal(t, t0+5, h.DueAt())

	advance(s, 4)
	assert.Empty(t, firedAt, "never fires early")

	advance(s, 1)
	assert.Equal(t, []uint64{t0 + 5}, firedAt)
	assert.Equal(t, StateDone, h.State())

	advance(s, 10)
	assert.Len(t, firedAt, 1, "fires exactly once")
	assert.Equal(t, 0, s.Pending())
}

func TestScheduleOnce_CancelBeforeDue(t *testing.T) {
	s := New(nil)
	fired := false

	h, err := s.ScheduleOnce(5, func() error {
		fired = true
		return nil
	})
	require.NoError(t, err)

	advance(s, 3)
	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel(), "cancel is idempotent")

	advance(s, 10)
	assert.False(t, fired)
	assert.Equal(t, StateCancelled, h.State())
	assert.Equal(t, 0, h.Remaining())
}

func TestScheduleOnce_ZeroDelayFiresNextTick(t *testing.T) {
	s := New(nil)
	fired := 0
	_, err := s.ScheduleOnce(0, func() error {
		fired++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Tick())
	assert.Equal(t, 1, fired)
}

func TestScheduleOnce_InvalidArguments(t *testing.T) {
	s := New(nil)

	_, err := s.ScheduleOnce(-1, func() error { return nil })
	assert.True(t, chaoserr.IsInvalidArgument(err))

	_, err = s.ScheduleOnce(1, nil)
	assert.True(t, chaoserr.IsInvalidArgument(err))

	_, err = s.SchedulePeriodic(0, 3, nil, nil)
	assert.True(t, chaoserr.IsInvalidArgument(err))

	_, err = s.SchedulePeriodic(1, -1, nil, nil)
	assert.True(t, chaoserr.IsInvalidArgument(err))
}

func TestSchedulePeriodic_CountdownThenTerminal(t *testing.T) {
	s := New(nil)

	var ticks []int
	terminal := 0
	h, err := s.SchedulePeriodic(1, 5,
		func(remaining int) error {
			ticks = append(ticks, remaining)
			return nil
		},
		func() error {
			terminal++
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 5, h.Remaining())

	advance(s, 5)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ticks)
	assert.Equal(t, 0, terminal, "terminal never runs before the countdown ends")
	assert.Equal(t, StateTicking, h.State())

	advance(s, 1)
	assert.Equal(t, 1, terminal)
	assert.Equal(t, StateDone, h.State())

	advance(s, 20)
	assert.Len(t, ticks, 5)
	assert.Equal(t, 1, terminal)
}

func TestSchedulePeriodic_PeriodSpacing(t *testing.T) {
	s := New(nil)
	start := s.Now()

	var at []uint64
	_, err := s.SchedulePeriodic(20, 3,
		func(int) error {
			at = append(at, s.Now())
			return nil
		},
		func() error {
			at = append(at, s.Now())
			return nil
		})
	require.NoError(t, err)

	advance(s, 100)
	assert.Equal(t, []uint64{start + 1, start + 21, start + 41, start + 61}, at)
}

func TestSchedulePeriodic_SelfCancelInOnTick(t *testing.T) {
	s := New(nil)

	var h *Handle
	calls := 0
	terminal := false
	var err error
	h, err = s.SchedulePeriodic(1, 5,
		func(remaining int) error {
			calls++
			if remaining == 3 {
				h.Cancel()
				h.Cancel()
			}
			return nil
		},
		func() error {
			terminal = true
			return nil
		})
	require.NoError(t, err)

	advance(s, 10)
	assert.Equal(t, 3, calls)
	assert.False(t, terminal, "terminal never runs after cancel")
	assert.Equal(t, StateCancelled, h.State())
}

func TestTick_CancelInsideFailingCallbackWins(t *testing.T) {
	var sunk []error
	s := New(zap.NewNop(), WithErrorSink(func(err error) {
		sunk = append(sunk, err)
	}))

	var once, periodic *Handle
	var err error
	once, err = s.ScheduleOnce(1, func() error {
		once.Cancel()
		return errors.New("boom")
	})
	require.NoError(t, err)

	periodic, err = s.SchedulePeriodic(1, 1, nil, func() error {
		periodic.Cancel()
		return errors.New("boom")
	})
	require.NoError(t, err)

	advance(s, 5)
	assert.Equal(t, StateCancelled, once.State())
	assert.Equal(t, StateCancelled, periodic.State())
	assert.Zero(t, s.Pending())

	require.Len(t, sunk, 2, "the error is still reported")
	for _, e := range sunk {
		assert.True(t, chaoserr.IsDeferredTaskFailure(e))
	}
}

func TestSchedulePeriodic_ZeroRepeat(t *testing.T) {
	s := New(nil)
	terminal := 0
	_, err := s.SchedulePeriodic(5, 0, nil, func() error {
		terminal++
		return nil
	})
	require.NoError(t, err)

	s.Tick()
	assert.Equal(t, 1, terminal)
}

func TestTick_FailureIsolated(t *testing.T) {
	var sunk []error
	s := New(zap.NewNop(), WithErrorSink(func(err error) {
		sunk = append(sunk, err)
	}))

	boom, err := s.ScheduleOnce(1, func() error {
		return errors.New("boom")
	})
	require.NoError(t, err)

	panicky, err := s.SchedulePeriodic(1, 3, func(int) error {
		panic("kaboom")
	}, nil)
	require.NoError(t, err)

	okRan := false
	_, err = s.ScheduleOnce(1, func() error {
		okRan = true
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Tick())
	assert.True(t, okRan, "failures do not stop other tasks")

	assert.Equal(t, StateFailed, boom.State())
	assert.Equal(t, StateFailed, panicky.State())

	require.Len(t, sunk, 2)
	for _, e := range sunk {
		assert.True(t, chaoserr.IsDeferredTaskFailure(e))
	}
	assert.Equal(t, boom.ID(), chaoserr.GetMeta(sunk[0])["task_id"])
	assert.Contains(t, sunk[1].Error(), "kaboom")

	advance(s, 5)
	assert.Len(t, sunk, 2, "failed tasks are not retried")
}

func TestTick_OrderAndNoSameTickScheduling(t *testing.T) {
	s := New(nil)

	var order []string
	_, err := s.ScheduleOnce(2, func() error {
		order = append(order, "first")
		_, err := s.ScheduleOnce(0, func() error {
			order = append(order, "nested")
			return nil
		})
		return err
	})
	require.NoError(t, err)
	_, err = s.ScheduleOnce(2, func() error {
		order = append(order, "second")
		return nil
	})
	require.NoError(t, err)

	advance(s, 2)
	assert.Equal(t, []string{"first", "second"}, order)

	s.Tick()
	assert.Equal(t, []string{"first", "second", "nested"}, order)
}

func TestTick_CancelOtherDuringTick(t *testing.T) {
	s := New(nil)

	victimRan := false
	var victim *Handle
	_, err := s.ScheduleOnce(1, func() error {
		victim.Cancel()
		return nil
	})
	require.NoError(t, err)
	victim, err = s.ScheduleOnce(1, func() error {
		victimRan = true
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Tick())
	assert.False(t, victimRan)
}

func TestCancelAll(t *testing.T) {
	s := New(nil)
	for i := 0; i < 3; i++ {
		_, err := s.ScheduleOnce(5, func() error { return nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 3, s.Pending())
	assert.Equal(t, 3, s.CancelAll())
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 0, s.Tick())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "cancelled", StateCancelled.String())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateTicking.Terminal())
}
