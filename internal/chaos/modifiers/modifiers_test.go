package modifiers

import (
	"context"
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world/worldtest"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(h *worldtest.Harness, ev *event.Event) *dispatch.Context {
	return &dispatch.Context{
		Event:  ev,
		World:  h.World,
		Tags:   h.Tags,
		Tasks:  h.Tasks,
		Rand:   h.Rand,
		Logger: h.Logger,
	}
}

// applyModifier runs one modifier of a table against ev
func applyModifier(t *testing.T, h *worldtest.Harness, table func() []modifier, id string, ev *event.Event) error {
	t.Helper()
	for _, m := range table() {
		if m.ID == id {
			require.NotNil(t, m.Effect, "modifier %s has no effect", id)
			return m.Effect(newContext(h, ev))
		}
	}
	t.Fatalf("modifier %s not found", id)
	return nil
}

func newRegisteredDispatcher(t *testing.T, h *worldtest.Harness, opts Options) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(dispatch.Options{
		World:  h.World,
		Tags:   h.Tags,
		Tasks:  h.Tasks,
		Rand:   h.Rand,
		Logger: h.Logger,
	})
	require.NoError(t, err)
	require.NoError(t, Register(d, opts))
	return d
}

func TestCatalogs_BuildsEveryTable(t *testing.T) {
	catalogs, err := Catalogs(Options{})
	require.NoError(t, err)

	assert.Len(t, catalogs, len(Names()))
	for _, name := range Names() {
		c, ok := catalogs[name]
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
		assert.NotEmpty(t, c.Modifiers())
	}

	impact := catalogs[ProjectileImpact]
	assert.Len(t, impact.Modifiers(), 15)
	_, hasNone := impact.Lookup("none")
	assert.False(t, hasNone, "every impact gets an effect")

	assert.Len(t, catalogs[TimeSkip].Modifiers(), 15)
	assert.Len(t, catalogs[EntityTags].Modifiers(), 10)
}

func TestCatalogs_WeightOverrides(t *testing.T) {
	catalogs, err := Catalogs(Options{Weights: map[string]map[string]float64{
		BlockBreak: {"none": 0, "change_xp": 5},
	}})
	require.NoError(t, err)
	m, ok := catalogs[BlockBreak].Lookup("change_xp")
	require.True(t, ok)
	assert.Equal(t, 5.0, m.Weight)

	tests := []struct {
		name    string
		opts    Options
		isError func(error) bool
	}{
		{
			name:    "unknown catalog",
			opts:    Options{Weights: map[string]map[string]float64{"fishing": {"none": 1}}},
			isError: chaoserr.IsInvalidArgument,
		},
		{
			name:    "unknown modifier",
			opts:    Options{Weights: map[string]map[string]float64{BlockBreak: {"nuke": 1}}},
			isError: chaoserr.IsInvalidArgument,
		},
		{
			name:    "negative weight",
			opts:    Options{Weights: map[string]map[string]float64{Explosion: {"increase": -1}}},
			isError: chaoserr.IsInvalidDistribution,
		},
		{
			name:    "probability above one",
			opts:    Options{Weights: map[string]map[string]float64{EntityTags: {string(TagBombOnDamage): 1.5}}},
			isError: chaoserr.IsInvalidDistribution,
		},
		{
			name:    "unknown disabled catalog",
			opts:    Options{Disabled: []string{"fishing"}},
			isError: chaoserr.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Catalogs(tt.opts)
			require.Error(t, err)
			assert.True(t, tt.isError(err), "unexpected error: %v", err)
		})
	}
}

func TestRegister_BindsRoutesInOrder(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})

	spawn := d.Routes(event.CreatureSpawn)
	require.Len(t, spawn, 3)
	assert.Equal(t, SpawnAnimal, spawn[0].Name)
	assert.Equal(t, SpawnCreature, spawn[1].Name)
	assert.Equal(t, EntityTags, spawn[2].Name)

	hit := d.Routes(event.ProjectileHit)
	require.Len(t, hit, 2)
	assert.Equal(t, ProjectileImpact, hit[0].Name)
	assert.Equal(t, ProjectileHitReactions, hit[1].Name)

	assert.Len(t, d.Routes(event.EntityExplode), 1)
	assert.Len(t, d.Routes(event.BlockExplode), 1)
}

func TestRegister_DisabledCatalogsAreNotBound(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{Disabled: []string{BlockBreak, EntityTags}})

	assert.Empty(t, d.Routes(event.BlockBreak))
	assert.Len(t, d.Routes(event.CreatureSpawn), 2)
}

func TestDispatch_SpawnPicksPoolThenTags(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	cow := h.Place(world.KindCow, 0, 65, 0)

	// Pool roll of zero lands on none; the first tag trial succeeds.
	h.Rand.QueueFractions(0).QueueChances(true)

	out := d.Dispatch(context.Background(), event.NewSpawn(cow))

	assert.Equal(t, dispatch.StateDone, out.State)
	assert.Equal(t, []dispatch.Selection{
		{Catalog: SpawnAnimal, Modifier: "none"},
		{Catalog: EntityTags, Modifier: string(TagBombOnDamage)},
	}, out.Selected)
	assert.True(t, h.Tags.Has(cow.ID, TagBombOnDamage))
	assert.Equal(t, []tags.Key{TagBombOnDamage}, h.Tags.Keys(cow.ID))
}

func TestDispatch_NonLivingSpawnIsIgnored(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{})
	stand := h.Place(world.KindArmorStand, 0, 65, 0)

	out := d.Dispatch(context.Background(), event.NewSpawn(stand))
	assert.Empty(t, out.Selected)
	assert.Equal(t, 0, h.Tags.Len())
}

func TestDispatch_TypeChangeStopsLaterTagging(t *testing.T) {
	h := worldtest.NewHarness(t)
	d := newRegisteredDispatcher(t, h, Options{Weights: map[string]map[string]float64{
		SpawnAnimal: {"none": 0, "attribute_boost": 0, "name_tag_change": 0, "potion_effect": 0,
			"animal_clone": 0, "launch_animal": 0},
	}})
	pig := h.Place(world.KindPig, 0, 65, 0)

	h.Rand.QueueChances(true, true)
	out := d.Dispatch(context.Background(), event.NewSpawn(pig))

	assert.Equal(t, []string{"entity_type_change"}, out.Applied)
	assert.ElementsMatch(t, []string{string(TagBombOnDamage), string(TagExtraLootMultiplier)}, out.Skipped)
	assert.False(t, h.Exists(pig.ID))
	assert.Equal(t, 1, h.World.Count(world.KindChicken))
	assert.Equal(t, 0, h.Tags.Len())
}
