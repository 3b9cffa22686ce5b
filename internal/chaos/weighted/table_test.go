package weighted_test

import (
	"math"
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/weighted"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc(t *testing.T) *weighted.Table[string] {
	t.Helper()
	table, err := weighted.New(
		weighted.Entry[string]{ID: "A", Weight: 0.5},
		weighted.Entry[string]{ID: "B", Weight: 0.3},
		weighted.Entry[string]{ID: "C", Weight: 0.2},
	)
	require.NoError(t, err)
	return table
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []weighted.Entry[string]
	}{
		{"empty", nil},
		{"all zero", []weighted.Entry[string]{{ID: "a", Weight: 0}, {ID: "b", Weight: 0}}},
		{"negative", []weighted.Entry[string]{{ID: "a", Weight: 1}, {ID: "b", Weight: -0.1}}},
		{"nan", []weighted.Entry[string]{{ID: "a", Weight: math.NaN()}}},
		{"inf", []weighted.Entry[string]{{ID: "a", Weight: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := weighted.New(tt.entries...)
			require.Error(t, err)
			assert.True(t, chaoserr.IsInvalidDistribution(err))
		})
	}
}

func TestPick_RegistrationOrderRanges(t *testing.T) {
	table := abc(t)

	tests := []struct {
		roll float64
		want string
	}{
		{0, "A"},
		{0.49, "A"},
		{0.5, "B"},
		{0.79, "B"},
		{0.8, "C"},
		{0.99, "C"},
	}
	for _, tt := range tests {
		got, ok := table.Pick(tt.roll)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "roll %v", tt.roll)
	}

	_, ok := table.Pick(1.0)
	assert.False(t, ok, "a roll at total falls through")
}

func TestPick_ZeroWeightNeverSelected(t *testing.T) {
	table, err := weighted.New(
		weighted.Entry[string]{ID: "never", Weight: 0},
		weighted.Entry[string]{ID: "always", Weight: 2},
	)
	require.NoError(t, err)

	got, ok := table.Pick(0)
	require.True(t, ok)
	assert.Equal(t, "always", got)
}

func TestSelect_ExclusiveScenario(t *testing.T) {
	table, err := weighted.New(
		weighted.Entry[string]{ID: "NONE", Weight: 0.5},
		weighted.Entry[string]{ID: "BOOST", Weight: 0.3},
		weighted.Entry[string]{ID: "SPAWN", Weight: 0.2},
	)
	require.NoError(t, err)

	src := rng.NewScripted().QueueFractions(0.6)
	got, ok := table.Select(src)
	require.True(t, ok)
	assert.Equal(t, "BOOST", got)
}

func TestSelect_DeterministicWithSeed(t *testing.T) {
	table := abc(t)

	run := func() []string {
		src := rng.NewSeeded(1234)
		out := make([]string, 0, 200)
		for i := 0; i < 200; i++ {
			id, ok := table.Select(src)
			require.True(t, ok)
			out = append(out, id)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestSelect_FrequencyConverges(t *testing.T) {
	table := abc(t)
	src := rng.NewSeeded(99)

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		id, ok := table.Select(src)
		require.True(t, ok)
		counts[id]++
	}

	assert.InDelta(t, 0.5, float64(counts["A"])/draws, 0.02)
	assert.InDelta(t, 0.3, float64(counts["B"])/draws, 0.02)
	assert.InDelta(t, 0.2, float64(counts["C"])/draws, 0.02)
}

func TestTableAccessors(t *testing.T) {
	table := abc(t)
	assert.InDelta(t, 1.0, table.Total(), 1e-9)
	assert.Equal(t, 3, table.Len())
	assert.InDelta(t, 0.3, table.Probability("B"), 1e-9)
	assert.Equal(t, 0.0, table.Probability("Z"))

	entries := table.Entries()
	entries[0].Weight = 100
	assert.InDelta(t, 0.5, table.Probability("A"), 1e-9, "entries are copied")
}
