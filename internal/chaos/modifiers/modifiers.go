// Package modifiers holds the modifier tables for every world event and
// binds them to a dispatcher.
package modifiers

import (
	"strconv"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

type (
	modifier  = catalog.Modifier[*dispatch.Context]
	procedure = catalog.Procedure[*dispatch.Context]
)

// Catalog names
const (
	BlockBreak                = "block_break"
	Explosion                 = "explosion"
	SpawnAnimal               = "spawn_animal"
	SpawnCreature             = "spawn_creature"
	EntityTags                = "entity_tags"
	EntityDamageReactions     = "entity_damage_reactions"
	EntityDeathReactions      = "entity_death_reactions"
	ProjectileLaunch          = "projectile_launch"
	ProjectileImpact          = "projectile_impact"
	ProjectileHitReactions    = "projectile_hit_reactions"
	ProjectileDamageReactions = "projectile_damage_reactions"
	TimeSkip                  = "time_skip"
)

const (
	countdownSteps  = 5
	countdownPeriod = 20
)

// Options tunes the tables before they are validated
type Options struct {
	// Weights overrides modifier weights, keyed by catalog then modifier id
	Weights map[string]map[string]float64

	// Disabled lists catalogs that are built but never bound
	Disabled []string
}

type binding struct {
	event   event.Type
	catalog string
	match   func(ev *event.Event) bool
}

type table struct {
	name string
	mods func() []modifier
}

var tables = []table{
	{BlockBreak, blockBreakModifiers},
	{Explosion, explosionModifiers},
	{SpawnAnimal, spawnAnimalModifiers},
	{SpawnCreature, spawnCreatureModifiers},
	{EntityTags, entityTagModifiers},
	{EntityDamageReactions, entityDamageReactions},
	{EntityDeathReactions, entityDeathReactions},
	{ProjectileLaunch, projectileLaunchModifiers},
	{ProjectileImpact, projectileImpactModifiers},
	{ProjectileHitReactions, projectileHitReactions},
	{ProjectileDamageReactions, projectileDamageReactions},
	{TimeSkip, timeSkipModifiers},
}

// bindings lists routes in dispatch order. Spawn pools run before spawn
// tags, and the impact table runs before the tag reactions that remove the
// projectile.
var bindings = []binding{
	{event.BlockBreak, BlockBreak, nil},
	{event.EntityExplode, Explosion, nil},
	{event.BlockExplode, Explosion, nil},
	{event.CreatureSpawn, SpawnAnimal, func(ev *event.Event) bool { return ev.Subject.IsAnimal() }},
	{event.CreatureSpawn, SpawnCreature, func(ev *event.Event) bool {
		return ev.Subject.Living() && !ev.Subject.IsAnimal()
	}},
	{event.CreatureSpawn, EntityTags, func(ev *event.Event) bool { return ev.Subject.Living() }},
	{event.EntityDamage, EntityDamageReactions, func(ev *event.Event) bool { return ev.Subject.Living() }},
	{event.EntityDeath, EntityDeathReactions, nil},
	{event.ProjectileLaunch, ProjectileLaunch, func(ev *event.Event) bool {
		return ev.Subject.IsProjectile() && ev.Shooter != ""
	}},
	{event.ProjectileHit, ProjectileImpact, nil},
	{event.ProjectileHit, ProjectileHitReactions, nil},
	{event.ProjectileDamage, ProjectileDamageReactions, func(ev *event.Event) bool { return ev.Damager != nil }},
	{event.TimeSkip, TimeSkip, func(ev *event.Event) bool { return ev.SkipReason == event.SkipNight }},
}

// Catalogs builds and validates every table. Weight overrides are applied
// first, so a bad override fails here.
func Catalogs(opts Options) (map[string]*catalog.Catalog[*dispatch.Context], error) {
	known := make(map[string]bool, len(tables))
	out := make(map[string]*catalog.Catalog[*dispatch.Context], len(tables))

	for _, t := range tables {
		known[t.name] = true
		c, err := catalog.New(t.name, t.mods(), catalog.WithWeights(opts.Weights[t.name]))
		if err != nil {
			return nil, err
		}
		out[t.name] = c
	}

	for name := range opts.Weights {
		if !known[name] {
			return nil, chaoserr.InvalidArgumentf("weight overrides for unknown catalog %s", name)
		}
	}
	for _, name := range opts.Disabled {
		if !known[name] {
			return nil, chaoserr.InvalidArgumentf("cannot disable unknown catalog %s", name)
		}
	}
	return out, nil
}

// Register builds every table and binds the enabled ones to d
func Register(d *dispatch.Dispatcher, opts Options) error {
	catalogs, err := Catalogs(opts)
	if err != nil {
		return err
	}

	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	for _, b := range bindings {
		if disabled[b.catalog] {
			continue
		}
		route := dispatch.Route{Name: b.catalog, Match: b.match, Catalog: catalogs[b.catalog]}
		if err := d.Bind(b.event, route); err != nil {
			return err
		}
	}
	return nil
}

// Names returns every catalog name in registration order
func Names() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}

// withSubject wraps an effect that acts on a live event subject
func withSubject(fn procedure) procedure {
	return func(c *dispatch.Context) error {
		if err := c.RequireSubject(); err != nil {
			return err
		}
		if err := c.RequireWorld(c.Event.Subject.Location); err != nil {
			return err
		}
		return fn(c)
	}
}

// tolerate drops precondition skips from effects that act on many targets,
// so one vanished target does not abort the rest
func tolerate(err error) error {
	if chaoserr.IsPreconditionSkip(err) {
		return nil
	}
	return err
}

// tag returns an effect that marks the subject with key
func tag(key tags.Key, value func(src rng.Source) tags.Value) procedure {
	return withSubject(func(c *dispatch.Context) error {
		return c.Tag(key, value(c.Rand))
	})
}

func flag(rng.Source) tags.Value { return tags.Bool(true) }

// requireTag skips the reaction unless the subject carries key. The tag is
// left in place; reactions consume it once they know they can complete.
func requireTag(c *dispatch.Context, key tags.Key) error {
	if !c.Tagged(key) {
		return chaoserr.PreconditionSkip("subject has no " + string(key) + " tag")
	}
	return nil
}

// removeLater despawns an entity from a deferred callback. The entity may
// already be gone by then.
func removeLater(c *dispatch.Context, id world.EntityID) error {
	c.Tags.RemoveAll(id)
	return tolerate(c.World.Remove(id))
}

// countdownExplosion shows a marker at counting down from five, one step
// every second, then removes it and explodes. then runs after the blast.
// The returned abort cancels the countdown and removes the marker, for
// callers whose remaining work fails.
func countdownExplosion(c *dispatch.Context, at world.Location, then func() error) (abort func(), err error) {
	marker, err := c.World.SpawnMarker(at, strconv.Itoa(countdownSteps))
	if err != nil {
		return nil, err
	}

	w, src := c.World, c.Rand
	h, err := c.Tasks.SchedulePeriodic(countdownPeriod, countdownSteps,
		func(remaining int) error {
			return tolerate(w.SetName(marker, strconv.Itoa(remaining)))
		},
		func() error {
			if err := tolerate(w.Remove(marker)); err != nil {
				return err
			}
			if err := tolerate(w.Explode(at, explosionPower(src))); err != nil {
				return err
			}
			if then != nil {
				return then()
			}
			return nil
		})
	if err != nil {
		_ = w.Remove(marker)
		return nil, err
	}
	return func() {
		h.Cancel()
		_ = w.Remove(marker)
	}, nil
}

// explosionPower is the 3 to 30 blast used by countdowns and delayed explosions
func explosionPower(src rng.Source) float64 {
	return float64(3 * rng.Between(src, 1, 10))
}

// randomStatus picks one of pool with the duration and amplifier the
// spawn pools use
func randomStatus(src rng.Source, pool []world.StatusType, minSeconds, maxSeconds int) world.Status {
	return world.Status{
		Type:      rng.PickOne(src, pool),
		Ticks:     20 * rng.Between(src, minSeconds, maxSeconds),
		Amplifier: src.Intn(2),
	}
}

func livingNearby(c *dispatch.Context, at world.Location, radius float64) ([]world.Entity, error) {
	near, err := c.World.Nearby(at, radius)
	if err != nil {
		return nil, err
	}
	out := near[:0]
	for _, e := range near {
		if e.Living() {
			out = append(out, e)
		}
	}
	return out, nil
}
