package modifiers

import (
	"context"
	"errors"
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world/worldtest"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeArrow(t *testing.T, h *worldtest.Harness, x, y, z float64, v world.Vector) world.Entity {
	t.Helper()
	arrow := h.Place(world.KindArrow, x, y, z)
	require.NoError(t, h.World.SetVelocity(arrow.ID, v))
	return arrow
}

func TestProjectileLaunch_TagsShotArrows(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	arrow := placeArrow(t, h, 0, 66, 0, world.Vector{X: 1})

	// multi_shot, speed_boost and transform fail; explosive succeeds
	h.Rand.QueueChances(false, false, false, true)
	out := d.Dispatch(context.Background(), event.NewProjectileLaunch(arrow, "player-1"))

	assert.Equal(t, []string{string(TagExplosive)}, out.Applied)
	v, err := h.Tags.Get(arrow.ID, TagExplosive)
	require.NoError(t, err)
	assert.Equal(t, tags.KindFloat, v.Kind())
}

func TestProjectileLaunch_IgnoresUnshotProjectiles(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	arrow := placeArrow(t, h, 0, 66, 0, world.Vector{X: 1})

	out := d.Dispatch(context.Background(), event.NewProjectileLaunch(arrow, ""))

	assert.Empty(t, out.Selected)
	_, chances, _ := h.Rand.Calls()
	assert.Zero(t, chances)
}

func TestProjectileLaunch_Transform(t *testing.T) {
	h := worldtest.NewHarness(t)
	arrow := placeArrow(t, h, 0, 66, 0, world.Vector{X: 1, Y: 0.5})
	ev := event.NewProjectileLaunch(arrow, "player-1")

	h.Rand.QueueInts(0)
	require.NoError(t, applyModifier(t, h, projectileLaunchModifiers, "transform", ev))

	assert.False(t, h.Exists(arrow.ID))
	assert.True(t, ev.SubjectGone)
	assert.Equal(t, 0, h.World.Count(world.KindArrow))

	entities, err := h.World.Entities("world")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, world.KindSpectralArrow, entities[0].Kind)
	assert.Equal(t, world.Vector{X: 1, Y: 0.5}, h.State(entities[0].ID).Velocity)

	// the tag trials that follow skip the removed projectile
	err = applyModifier(t, h, projectileLaunchModifiers, string(TagExplosive), ev)
	assert.True(t, chaoserr.IsPreconditionSkip(err))
}

func TestProjectileLaunch_MultiShotAndSpeed(t *testing.T) {
	h := worldtest.NewHarness(t)
	arrow := placeArrow(t, h, 0, 66, 0, world.Vector{Z: 2})

	h.Rand.QueueInts(1)
	require.NoError(t, applyModifier(t, h, projectileLaunchModifiers, "multi_shot", event.NewProjectileLaunch(arrow, "p")))
	assert.Equal(t, 4, h.World.Count(world.KindArrow))

	require.NoError(t, applyModifier(t, h, projectileLaunchModifiers, "speed_boost", event.NewProjectileLaunch(arrow, "p")))
	assert.Equal(t, world.Vector{Z: 4}, h.State(arrow.ID).Velocity)
}

func TestProjectileHit_ExplosiveTag(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		roll  float64
		want  string
	}{
		{name: "rolled size", value: 0, roll: 0.5, want: "16.5"},
		{name: "fixed size", value: 5, want: "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := worldtest.NewHarness(t)
			arrow := placeArrow(t, h, 1, 64, 1, world.Vector{})
			h.Tag(arrow.ID, TagExplosive, tags.Float(tt.value))
			h.Rand.QueueFractions(tt.roll)

			ev := event.NewProjectileHit(arrow, nil, nil)
			require.NoError(t, applyModifier(t, h, projectileHitReactions, string(TagExplosive), ev))

			explosions := h.World.CallsTo("explode")
			require.Len(t, explosions, 1)
			assert.Equal(t, tt.want, explosions[0].Detail)
			assert.Equal(t, arrow.Location, explosions[0].At)
			assert.False(t, h.Exists(arrow.ID))
			assert.True(t, ev.SubjectGone)
			assert.Equal(t, 0, h.Tags.Len())
		})
	}
}

func TestProjectileHit_SheepExplosion(t *testing.T) {
	h := worldtest.NewHarness(t)
	egg := h.Place(world.KindEgg, 0, 65, 0)
	h.Tag(egg.ID, TagSheepExplosion, tags.Bool(true))

	require.NoError(t, applyModifier(t, h, projectileHitReactions, string(TagSheepExplosion),
		event.NewProjectileHit(egg, nil, nil)))

	assert.Equal(t, 3, h.World.Count(world.KindSheep))
	for _, call := range h.World.CallsTo("set_name") {
		assert.Equal(t, "Baah!!", call.Detail)
	}
	assert.False(t, h.Exists(egg.ID))
}

func TestProjectileHit_ImpactRunsBeforeReactions(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	arrow := placeArrow(t, h, 0, 65, 0, world.Vector{})
	h.Tag(arrow.ID, TagExplosive, tags.Float(0))

	// impact roll lands on explosive_impact, which sizes its blast at 6.5
	h.Rand.QueueFractions(0, 0.5)
	out := d.Dispatch(context.Background(), event.NewProjectileHit(arrow, nil, nil))

	assert.Equal(t, []string{"explosive_impact", string(TagExplosive)}, out.Applied)
	assert.Equal(t, []string{string(TagSheepExplosion)}, out.Skipped)

	var sizes []string
	for _, call := range h.World.CallsTo("explode") {
		sizes = append(sizes, call.Detail)
	}
	assert.Equal(t, []string{"6.5", "3.0"}, sizes)
	assert.False(t, h.Exists(arrow.ID))
}

func TestProjectileDamage_KnockbackAndBoost(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	arrow := placeArrow(t, h, 0, 65, 0, world.Vector{X: 3})
	zombie := h.Place(world.KindZombie, 10, 65, 0)
	h.Tag(arrow.ID, TagKnockback, tags.Float(10))
	h.Tag(arrow.ID, TagDamageBoost, tags.Float(2))

	ev := event.NewProjectileDamage(zombie, arrow, 4)
	out := d.Dispatch(context.Background(), ev)

	assert.Equal(t, []string{string(TagKnockback), string(TagDamageBoost)}, out.Applied)
	assert.Equal(t, []string{string(TagOnePunch)}, out.Skipped)
	assert.InDelta(t, 8, ev.Damage, 1e-9)
	assert.Equal(t, world.Vector{X: 10}, h.State(zombie.ID).Velocity)
	assert.Equal(t, 0, h.Tags.Len())
	assert.True(t, h.Exists(zombie.ID))
}

func TestProjectileDamage_OnePunchOverridesBoost(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	arrow := placeArrow(t, h, 0, 65, 0, world.Vector{})
	cow := h.Place(world.KindCow, 2, 65, 0)
	h.Tag(arrow.ID, TagDamageBoost, tags.Float(3))
	h.Tag(arrow.ID, TagOnePunch, tags.Bool(true))

	ev := event.NewProjectileDamage(cow, arrow, 2)
	d.Dispatch(context.Background(), ev)

	assert.Equal(t, float64(onePunchDamage), ev.Damage)
}

func TestProjectileDamage_TagKeptWithoutWorld(t *testing.T) {
	h := worldtest.NewHarness(t)
	arrow := placeArrow(t, h, 0, 65, 0, world.Vector{})
	zombie := h.Place(world.KindZombie, 2, 65, 0)
	h.Tag(arrow.ID, TagOnePunch, tags.Bool(true))

	ev := event.NewProjectileDamage(zombie, world.Entity{ID: arrow.ID, Kind: world.KindArrow}, 2)
	err := applyModifier(t, h, projectileDamageReactions, string(TagOnePunch), ev)

	assert.True(t, chaoserr.IsPreconditionSkip(err))
	assert.True(t, h.Tags.Has(arrow.ID, TagOnePunch))
	assert.Equal(t, 2.0, ev.Damage)
}

func TestProjectileHit_FailedReactionKeepsTag(t *testing.T) {
	tests := []struct {
		name string
		key  tags.Key
		op   string
	}{
		{name: "explosion fails", key: TagExplosive, op: "explode"},
		{name: "sheep cannot spawn", key: TagSheepExplosion, op: "spawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := worldtest.NewHarness(t)
			arrow := placeArrow(t, h, 0, 65, 0, world.Vector{})
			h.Tag(arrow.ID, tt.key, tags.Float(5))
			h.World.FailOn(tt.op, errors.New("world busy"))

			err := applyModifier(t, h, projectileHitReactions, string(tt.key), event.NewProjectileHit(arrow, nil, nil))

			require.Error(t, err)
			assert.True(t, h.Tags.Has(arrow.ID, tt.key))
			assert.True(t, h.Exists(arrow.ID))

			h.World.FailOn(tt.op, nil)
			require.NoError(t, applyModifier(t, h, projectileHitReactions, string(tt.key), event.NewProjectileHit(arrow, nil, nil)))
			assert.False(t, h.Tags.Has(arrow.ID, tt.key))
			assert.False(t, h.Exists(arrow.ID))
		})
	}
}

func TestProjectileHit_ExplosionIsNotReplayedWhenRemovalFails(t *testing.T) {
	h := worldtest.NewHarness(t)
	arrow := placeArrow(t, h, 0, 65, 0, world.Vector{})
	h.Tag(arrow.ID, TagExplosive, tags.Float(5))
	h.World.FailOn("remove", errors.New("world busy"))

	err := applyModifier(t, h, projectileHitReactions, string(TagExplosive), event.NewProjectileHit(arrow, nil, nil))

	require.Error(t, err)
	assert.Equal(t, 1, h.Ops("explode"))
	assert.False(t, h.Tags.Has(arrow.ID, TagExplosive))
	assert.True(t, h.Exists(arrow.ID))
}
