package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
)

// Tags attached to living entities when they spawn
const (
	TagBombOnDamage          tags.Key = "bomb_on_damage"
	TagExtraLootMultiplier   tags.Key = "extra_loot_multiplier"
	TagExtraSpawnOnDeath     tags.Key = "extra_spawn_on_death"
	TagFireOnDamage          tags.Key = "fire_on_damage"
	TagFreezeOnDamage        tags.Key = "freeze_on_damage"
	TagCloneOnDamage         tags.Key = "clone_on_damage"
	TagSpeedBoostOnDamage    tags.Key = "speed_boost_on_damage"
	TagExplodeOnDeathDelayed tags.Key = "explode_on_death_delayed"
	TagLightningOnDeath      tags.Key = "lightning_on_death"
	TagRandomPotionOnDeath   tags.Key = "random_potion_on_death"
)

const (
	damageFireTicks      = 100
	damageSpeedTicks     = 100
	deathExplosionDelay  = 60
	deathPotionRadius    = 10
	deathPotionTicks     = 200
	deathPotionAmplifier = 1
)

var deathPotions = []world.StatusType{
	world.StatusSpeed,
	world.StatusSlowness,
	world.StatusJumpBoost,
	world.StatusInvisibility,
	world.StatusRegeneration,
}

func entityTagModifiers() []modifier {
	return []modifier{
		catalog.Independent(string(TagBombOnDamage), 0.20, tag(TagBombOnDamage, flag)),
		catalog.Independent(string(TagExtraLootMultiplier), 0.25, tag(TagExtraLootMultiplier, func(src rng.Source) tags.Value {
			return tags.Int(rng.Between(src, 1, 10))
		})),
		catalog.Independent(string(TagExtraSpawnOnDeath), 0.10, tag(TagExtraSpawnOnDeath, func(src rng.Source) tags.Value {
			return tags.Int(rng.Between(src, 1, 25))
		})),
		catalog.Independent(string(TagFireOnDamage), 0.15, tag(TagFireOnDamage, flag)),
		catalog.Independent(string(TagFreezeOnDamage), 0.10, tag(TagFreezeOnDamage, flag)),
		catalog.Independent(string(TagCloneOnDamage), 0.10, tag(TagCloneOnDamage, flag)),
		catalog.Independent(string(TagSpeedBoostOnDamage), 0.10, tag(TagSpeedBoostOnDamage, flag)),
		catalog.Independent(string(TagExplodeOnDeathDelayed), 0.05, tag(TagExplodeOnDeathDelayed, flag)),
		catalog.Independent(string(TagLightningOnDeath), 0.05, tag(TagLightningOnDeath, flag)),
		catalog.Independent(string(TagRandomPotionOnDeath), 0.05, tag(TagRandomPotionOnDeath, flag)),
	}
}

// reaction builds a certain modifier that only acts when the subject carries
// key. The tag is left in place; fn decides whether to consume it.
func reaction(key tags.Key, fn procedure) modifier {
	return catalog.Independent(string(key), 1, func(c *dispatch.Context) error {
		if err := c.RequireSubject(); err != nil {
			return err
		}
		if err := requireTag(c, key); err != nil {
			return err
		}
		if err := c.RequireWorld(c.Subject().Location); err != nil {
			return err
		}
		return fn(c)
	})
}

// consuming builds a reaction that fires once: the tag is consumed only
// after fn completed, so a failed effect can fire again on the next event.
func consuming(key tags.Key, fn procedure) modifier {
	return reaction(key, func(c *dispatch.Context) error {
		if err := fn(c); err != nil {
			return err
		}
		_, err := c.Consume(key)
		return err
	})
}

func entityDamageReactions() []modifier {
	return []modifier{
		consuming(TagBombOnDamage, bombOnDamage),
		consuming(TagFireOnDamage, func(c *dispatch.Context) error {
			return c.World.Ignite(c.Subject().ID, damageFireTicks)
		}),
		consuming(TagFreezeOnDamage, func(c *dispatch.Context) error {
			if err := c.World.SetVelocity(c.Subject().ID, world.Vector{}); err != nil {
				return err
			}
			c.Event.Cancelled = true
			return nil
		}),
		consuming(TagCloneOnDamage, cloneSubject),
		consuming(TagSpeedBoostOnDamage, func(c *dispatch.Context) error {
			return c.World.ApplyStatus(c.Subject().ID, world.Status{
				Type:      world.StatusSpeed,
				Ticks:     damageSpeedTicks,
				Amplifier: 1,
			})
		}),
	}
}

// bombOnDamage cancels the hit and turns the entity into a countdown bomb.
// The countdown is armed before the entity turns invulnerable, and disarmed
// again if that fails.
func bombOnDamage(c *dispatch.Context) error {
	s := c.Subject()
	abort, err := countdownExplosion(c, s.Location, func() error {
		return removeLater(c, s.ID)
	})
	if err != nil {
		return err
	}
	if err := c.World.SetInvulnerable(s.ID, true); err != nil {
		abort()
		return err
	}
	c.Event.Cancelled = true
	return nil
}

// Death reactions that scale the death (loot, spawns) read their tag without
// consuming it; the dispatcher drops every tag of a dead subject once the
// event is handled.
func entityDeathReactions() []modifier {
	return []modifier{
		reaction(TagExtraLootMultiplier, extraLoot),
		reaction(TagExtraSpawnOnDeath, extraSpawns),
		consuming(TagExplodeOnDeathDelayed, func(c *dispatch.Context) error {
			at := c.Subject().Location
			w, src := c.World, c.Rand
			_, err := c.Tasks.ScheduleOnce(deathExplosionDelay, func() error {
				return tolerate(w.Explode(at, explosionPower(src)))
			})
			return err
		}),
		consuming(TagLightningOnDeath, func(c *dispatch.Context) error {
			return c.World.StrikeLightning(c.Subject().Location)
		}),
		consuming(TagRandomPotionOnDeath, deathPotionCloud),
	}
}

// extraLoot drops mult-1 more copies of every drop
func extraLoot(c *dispatch.Context) error {
	v, err := c.Tags.Get(c.Subject().ID, TagExtraLootMultiplier)
	if err != nil {
		return err
	}
	at := c.Subject().Location
	copies := v.Int() - 1
	for _, drop := range c.Event.Drops {
		for i := 0; i < copies; i++ {
			if err := c.World.DropItem(at, drop); err != nil {
				return err
			}
		}
	}
	return nil
}

func extraSpawns(c *dispatch.Context) error {
	v, err := c.Tags.Get(c.Subject().ID, TagExtraSpawnOnDeath)
	if err != nil {
		return err
	}
	s := c.Subject()
	for i := 0; i < v.Int(); i++ {
		if _, err := c.World.Spawn(s.Kind, s.Location); err != nil {
			return err
		}
	}
	return nil
}

// deathPotionCloud gives every living entity near the body its own random status
func deathPotionCloud(c *dispatch.Context) error {
	living, err := livingNearby(c, c.Subject().Location, deathPotionRadius)
	if err != nil {
		return err
	}
	for _, e := range living {
		status := world.Status{
			Type:      rng.PickOne(c.Rand, deathPotions),
			Ticks:     deathPotionTicks,
			Amplifier: deathPotionAmplifier,
		}
		if err := tolerate(c.World.ApplyStatus(e.ID, status)); err != nil {
			return err
		}
	}
	return nil
}
