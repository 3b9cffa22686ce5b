package catalog

import (
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCtx struct {
	trace []string
}

func record(id string) Procedure[*testCtx] {
	return func(ctx *testCtx) error {
		ctx.trace = append(ctx.trace, id)
		return nil
	}
}

func ids(mods []Modifier[*testCtx]) []string {
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		out = append(out, m.ID)
	}
	return out
}

func TestResolve_ExclusiveBoost(t *testing.T) {
	c, err := New("block_break", []Modifier[*testCtx]{
		Noop[*testCtx]("NONE", 0.5),
		Exclusive("BOOST", 0.3, record("BOOST")),
		Exclusive("SPAWN", 0.2, record("SPAWN")),
	})
	require.NoError(t, err)

	got := c.Resolve(rng.NewScripted().QueueFractions(0.6))
	assert.Equal(t, []string{"BOOST"}, ids(got))
}

func TestResolve_ExclusiveNoop(t *testing.T) {
	c, err := New("block_break", []Modifier[*testCtx]{
		Noop[*testCtx]("NONE", 0.5),
		Exclusive("BOOST", 0.5, record("BOOST")),
	})
	require.NoError(t, err)

	got := c.Resolve(rng.NewScripted().QueueFractions(0.1))
	require.Len(t, got, 1)
	assert.Equal(t, "NONE", got[0].ID)
	assert.True(t, got[0].IsNoop())
}

func TestResolve_IndependentCertainties(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want []string
	}{
		{"one certain", 1.0, 0.0, []string{"X"}},
		{"none", 0.0, 0.0, nil},
		{"both", 1.0, 1.0, []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("tags", []Modifier[*testCtx]{
				Independent("X", tt.x, record("X")),
				Independent("Y", tt.y, record("Y")),
			})
			require.NoError(t, err)

			src := rng.NewSeeded(1)
			for i := 0; i < 100; i++ {
				got := c.Resolve(src)
				if tt.want == nil {
					assert.Empty(t, got)
				} else {
					assert.Equal(t, tt.want, ids(got))
				}
			}
		})
	}
}

func TestResolve_IndependentDrawsOnlyForFractional(t *testing.T) {
	c, err := New("tags", []Modifier[*testCtx]{
		Independent("always", 1, record("always")),
		Independent("maybe", 0.5, record("maybe")),
		Independent("never", 0, record("never")),
	})
	require.NoError(t, err)

	src := rng.NewScripted().QueueChances(true)
	got := c.Resolve(src)
	assert.Equal(t, []string{"always", "maybe"}, ids(got))

	_, chance, _ := src.Calls()
	assert.Equal(t, 1, chance)
}

func TestResolve_MixedModesRegistrationOrder(t *testing.T) {
	c, err := New("mixed", []Modifier[*testCtx]{
		Independent("early", 1, record("early")),
		Noop[*testCtx]("none", 0.5),
		Exclusive("pick", 0.5, record("pick")),
		Independent("late", 1, record("late")),
	})
	require.NoError(t, err)

	got := c.Resolve(rng.NewScripted().QueueFractions(0.9))
	assert.Equal(t, []string{"early", "pick", "late"}, ids(got))

	ctx := &testCtx{}
	for _, m := range got {
		require.NoError(t, m.Effect(ctx))
	}
	assert.Equal(t, []string{"early", "pick", "late"}, ctx.trace)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		mods []Modifier[*testCtx]
		opts []Option
		code chaoserr.Code
	}{
		{"empty", nil, nil, chaoserr.CodeInvalidDistribution},
		{"duplicate", []Modifier[*testCtx]{Noop[*testCtx]("a", 1), Noop[*testCtx]("a", 1)}, nil, chaoserr.CodeInvalidDistribution},
		{"missing id", []Modifier[*testCtx]{Noop[*testCtx]("", 1)}, nil, chaoserr.CodeInvalidDistribution},
		{"negative", []Modifier[*testCtx]{Noop[*testCtx]("a", 1), Noop[*testCtx]("b", -1)}, nil, chaoserr.CodeInvalidDistribution},
		{"exclusive zero total", []Modifier[*testCtx]{Noop[*testCtx]("a", 0)}, nil, chaoserr.CodeInvalidDistribution},
		{"probability above one", []Modifier[*testCtx]{Independent("a", 1.5, record("a"))}, nil, chaoserr.CodeInvalidDistribution},
		{"override unknown", []Modifier[*testCtx]{Noop[*testCtx]("a", 1)}, []Option{WithWeights(map[string]float64{"zzz": 1})}, chaoserr.CodeInvalidArgument},
		{"override to zero total", []Modifier[*testCtx]{Noop[*testCtx]("a", 1)}, []Option{WithWeights(map[string]float64{"a": 0})}, chaoserr.CodeInvalidDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.mods, tt.opts...)
			require.Error(t, err)
			assert.Equal(t, tt.code, chaoserr.GetCode(err))
		})
	}
}

func TestNew_IndependentOnlyAllowsZeroProbabilities(t *testing.T) {
	_, err := New("tags", []Modifier[*testCtx]{
		Independent("a", 0, record("a")),
	})
	assert.NoError(t, err)
}

func TestWithWeights_Applied(t *testing.T) {
	c, err := New("block_break", []Modifier[*testCtx]{
		Noop[*testCtx]("none", 0.5),
		Exclusive("boom", 0.5, record("boom")),
	}, WithWeights(map[string]float64{"none": 0}))
	require.NoError(t, err)

	m, ok := c.Lookup("none")
	require.True(t, ok)
	assert.Equal(t, 0.0, m.Weight)

	src := rng.NewSeeded(3)
	for i := 0; i < 50; i++ {
		assert.Equal(t, []string{"boom"}, ids(c.Resolve(src)))
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew[*testCtx]("bad", nil)
	})
	assert.NotPanics(t, func() {
		c := MustNew("ok", []Modifier[*testCtx]{Noop[*testCtx]("a", 1)})
		assert.Equal(t, "ok", c.Name())
		assert.Len(t, c.Modifiers(), 1)
	})
}
