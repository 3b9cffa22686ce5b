package tags

import (
	"testing"

	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore_ConsumeExactlyOnce(t *testing.T) {
	store := NewStore[string](zap.NewNop())

	require.NoError(t, store.Set("zombie-1", "bomb_on_damage", Bool(true)))
	assert.True(t, store.Has("zombie-1", "bomb_on_damage"))

	v, err := store.Consume("zombie-1", "bomb_on_damage")
	require.NoError(t, err)
	assert.True(t, v.Bool())

	assert.False(t, store.Has("zombie-1", "bomb_on_damage"))

	_, err = store.Consume("zombie-1", "bomb_on_damage")
	require.Error(t, err)
	assert.True(t, chaoserr.IsTagAbsent(err))
}

func TestStore_SetOverwrites(t *testing.T) {
	store := NewStore[string](nil)

	require.NoError(t, store.Set("cow", "extra_loot_multiplier", Int(3)))
	require.NoError(t, store.Set("cow", "extra_loot_multiplier", Int(7)))

	v, err := store.Get("cow", "extra_loot_multiplier")
	require.NoError(t, err)
	assert.Equal(t, 7, v.Int())
	assert.Equal(t, []Key{"extra_loot_multiplier"}, store.Keys("cow"))
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore[string](nil)

	_, err := store.Get("nobody", "x")
	require.Error(t, err)
	assert.True(t, chaoserr.IsTagAbsent(err))
	assert.Equal(t, "x", chaoserr.GetMeta(err)["tag"])
}

func TestStore_SetRejectsInvalid(t *testing.T) {
	store := NewStore[string](nil)

	err := store.Set("s", "", Bool(true))
	assert.True(t, chaoserr.IsInvalidArgument(err))

	err = store.Set("s", "k", Value{})
	assert.True(t, chaoserr.IsInvalidArgument(err))
	assert.Equal(t, 0, store.Len())
}

func TestStore_RemoveAllCascades(t *testing.T) {
	store := NewStore[int](nil)

	require.NoError(t, store.Set(1, "a", Bool(true)))
	require.NoError(t, store.Set(1, "b", Float(2.5)))
	require.NoError(t, store.Set(2, "a", String("x")))
	assert.Equal(t, 2, store.Len())

	assert.Equal(t, 2, store.RemoveAll(1))
	assert.False(t, store.Has(1, "a"))
	assert.False(t, store.Has(1, "b"))
	assert.True(t, store.Has(2, "a"))
	assert.Equal(t, 1, store.Len())

	assert.Equal(t, 0, store.RemoveAll(1))
}

func TestStore_RemoveDropsEmptySubject(t *testing.T) {
	store := NewStore[int](nil)

	require.NoError(t, store.Set(1, "a", Bool(true)))
	assert.True(t, store.Remove(1, "a"))
	assert.False(t, store.Remove(1, "a"))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Keys(1))
}

func TestValue_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		b     bool
		i     int
		f     float64
		s     string
	}{
		{"bool", Bool(true), true, 1, 1, "true"},
		{"int", Int(4), true, 4, 4, "4"},
		{"float", Float(2.75), true, 2, 2.75, "2.75"},
		{"string", String("12"), false, 12, 12, "12"},
		{"zero int", Int(0), false, 0, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.b, tt.value.Bool())
			assert.Equal(t, tt.i, tt.value.Int())
			assert.InDelta(t, tt.f, tt.value.Float(), 1e-9)
			assert.Equal(t, tt.s, tt.value.String())
		})
	}

	assert.False(t, Value{}.Valid())
	assert.Equal(t, "float", Float(1).Kind().String())
}
