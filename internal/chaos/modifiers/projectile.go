package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

// Tags attached to projectiles at launch
const (
	TagExplosive      tags.Key = "explosive"
	TagKnockback      tags.Key = "knockback"
	TagDamageBoost    tags.Key = "damage_boost"
	TagSheepExplosion tags.Key = "sheep_explosion"
	TagOnePunch       tags.Key = "one_punch"
)

const (
	onePunchDamage = 1000
	sheepName      = "Baah!!"
)

var projectileKinds = []world.EntityKind{
	world.KindArrow,
	world.KindSpectralArrow,
	world.KindFireball,
	world.KindWitherSkull,
	world.KindSnowball,
	world.KindEgg,
	world.KindSmallFireball,
}

var launchSounds = []world.Sound{
	world.SoundCowAmbient,
	world.SoundChickenAmbient,
	world.SoundEndermanScream,
	world.SoundGhastScream,
	world.SoundCatAmbient,
}

func projectileLaunchModifiers() []modifier {
	return []modifier{
		catalog.Independent("multi_shot", 0.10, withSubject(multiShot)),
		catalog.Independent("speed_boost", 0.15, withSubject(func(c *dispatch.Context) error {
			id := c.Subject().ID
			v, err := c.World.Velocity(id)
			if err != nil {
				return err
			}
			return c.World.SetVelocity(id, v.Scale(c.Rand.Uniform(2, 10)))
		})),
		catalog.Independent("transform", 0.08, withSubject(transformProjectile)),
		catalog.Independent(string(TagExplosive), 0.05, tag(TagExplosive, func(rng.Source) tags.Value {
			return tags.Float(0)
		})),
		catalog.Independent(string(TagKnockback), 0.10, tag(TagKnockback, func(src rng.Source) tags.Value {
			return tags.Float(src.Uniform(2, 40))
		})),
		catalog.Independent(string(TagDamageBoost), 0.10, tag(TagDamageBoost, func(src rng.Source) tags.Value {
			return tags.Float(src.Uniform(1.5, 3))
		})),
		catalog.Independent(string(TagSheepExplosion), 0.02, tag(TagSheepExplosion, flag)),
		catalog.Independent(string(TagOnePunch), 0.01, tag(TagOnePunch, flag)),
		catalog.Independent("play_sound", 0.12, func(c *dispatch.Context) error {
			at := c.Event.Location
			if err := c.RequireWorld(at); err != nil {
				return err
			}
			return c.World.PlaySound(at, rng.PickOne(c.Rand, launchSounds), 1, c.Rand.Uniform(0.5, 2))
		}),
	}
}

// multiShot fires 2 to 20 copies of the projectile with its velocity
func multiShot(c *dispatch.Context) error {
	s := c.Subject()
	v, err := c.World.Velocity(s.ID)
	if err != nil {
		return err
	}
	n := rng.Between(c.Rand, 2, 20)
	for i := 0; i < n; i++ {
		id, err := c.World.Spawn(s.Kind, s.Location)
		if err != nil {
			return err
		}
		if err := c.World.SetVelocity(id, v); err != nil {
			return err
		}
	}
	return nil
}

// transformProjectile swaps the projectile for a different kind in flight
func transformProjectile(c *dispatch.Context) error {
	s := c.Subject()
	others := make([]world.EntityKind, 0, len(projectileKinds))
	for _, k := range projectileKinds {
		if k != s.Kind {
			others = append(others, k)
		}
	}
	kind := rng.PickOne(c.Rand, others)

	v, err := c.World.Velocity(s.ID)
	if err != nil {
		return err
	}
	if err := c.RemoveSubject(s.ID); err != nil {
		return err
	}
	id, err := c.World.Spawn(kind, s.Location)
	if err != nil {
		return err
	}
	return c.World.SetVelocity(id, v)
}

// projectileOf returns the projectile an event is about: the damager of a
// projectile damage event, otherwise the subject
func projectileOf(ev *event.Event) world.Entity {
	if ev.Type == event.ProjectileDamage && ev.Damager != nil {
		return *ev.Damager
	}
	return ev.Subject
}

// onProjectile builds a certain reaction to a tag the projectile carries.
// The tag is released once fn succeeds; a failed reaction keeps it.
func onProjectile(key tags.Key, fn func(c *dispatch.Context, projectile world.Entity, v tags.Value) error) modifier {
	return catalog.Independent(string(key), 1, func(c *dispatch.Context) error {
		p := projectileOf(c.Event)
		if p.ID == "" || !c.Tags.Has(p.ID, key) {
			return chaoserr.PreconditionSkip("projectile has no " + string(key) + " tag")
		}
		if err := c.RequireWorld(p.Location); err != nil {
			return err
		}
		v, err := c.Tags.Get(p.ID, key)
		if err != nil {
			return err
		}
		if err := fn(c, p, v); err != nil {
			return err
		}
		c.Tags.Remove(p.ID, key)
		return nil
	})
}

// spend removes the projectile once its effect has landed. The tag goes
// first so a failed removal cannot replay the effect on a later event.
func spend(c *dispatch.Context, p world.Entity, key tags.Key) error {
	c.Tags.Remove(p.ID, key)
	return tolerate(c.RemoveSubject(p.ID))
}

func projectileHitReactions() []modifier {
	return []modifier{
		onProjectile(TagExplosive, func(c *dispatch.Context, p world.Entity, v tags.Value) error {
			size := v.Float()
			if size <= 0 {
				size = c.Rand.Uniform(3, 30)
			}
			if err := c.World.Explode(p.Location, size); err != nil {
				return err
			}
			return spend(c, p, TagExplosive)
		}),
		onProjectile(TagSheepExplosion, func(c *dispatch.Context, p world.Entity, _ tags.Value) error {
			n := rng.Between(c.Rand, 3, 7)
			for i := 0; i < n; i++ {
				id, err := c.World.Spawn(world.KindSheep, p.Location)
				if err != nil {
					return err
				}
				if err := c.World.SetName(id, sheepName); err != nil {
					return err
				}
			}
			return spend(c, p, TagSheepExplosion)
		}),
	}
}

// Damage reactions run in order: knockback, then the boost multiplies the
// damage, then one punch overrides it.
func projectileDamageReactions() []modifier {
	return []modifier{
		onProjectile(TagKnockback, func(c *dispatch.Context, p world.Entity, v tags.Value) error {
			target := c.Subject()
			if !target.Living() {
				return nil
			}
			push := target.Location.Vector().Sub(p.Location.Vector()).Normalize().Scale(v.Float())
			return tolerate(c.World.SetVelocity(target.ID, push))
		}),
		onProjectile(TagDamageBoost, func(c *dispatch.Context, _ world.Entity, v tags.Value) error {
			c.Event.Damage *= v.Float()
			return nil
		}),
		onProjectile(TagOnePunch, func(c *dispatch.Context, _ world.Entity, _ tags.Value) error {
			c.Event.Damage = onePunchDamage
			return nil
		}),
	}
}
