package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
)

var (
	animalNames   = []string{"Fluffy", "Moo Moo", "Baa Baa", "Clucky", "Wiggly"}
	creatureNames = []string{"Silly Billy", "Party Animal", "Epic Spawner", "Mad Scientist", "The Unstoppable"}

	spawnStatuses = []world.StatusType{
		world.StatusSpeed,
		world.StatusRegeneration,
		world.StatusInvisibility,
		world.StatusJumpBoost,
		world.StatusResistance,
	}

	animalSwaps = map[world.EntityKind]world.EntityKind{
		world.KindCow:     world.KindSheep,
		world.KindSheep:   world.KindCow,
		world.KindPig:     world.KindChicken,
		world.KindChicken: world.KindPig,
	}
	animalKinds = []world.EntityKind{world.KindCow, world.KindSheep, world.KindPig, world.KindChicken}

	creatureSwaps = map[world.EntityKind]world.EntityKind{
		world.KindZombie:   world.KindSkeleton,
		world.KindSkeleton: world.KindZombie,
	}
	creatureKinds = []world.EntityKind{world.KindZombie, world.KindSkeleton}
)

func spawnAnimalModifiers() []modifier {
	return []modifier{
		catalog.Noop[*dispatch.Context]("none", 0.40),
		catalog.Exclusive("attribute_boost", 0.15, withSubject(boostAttributes(
			world.AttrMovementSpeed, world.AttrMaxHealth))),
		catalog.Exclusive("name_tag_change", 0.10, withSubject(rename(animalNames))),
		catalog.Exclusive("potion_effect", 0.10, withSubject(spawnPotion)),
		catalog.Exclusive("animal_clone", 0.10, withSubject(cloneSubject)),
		catalog.Exclusive("entity_type_change", 0.10, withSubject(changeKind(animalSwaps, animalKinds))),
		catalog.Exclusive("launch_animal", 0.05, withSubject(func(c *dispatch.Context) error {
			return launch(c, c.Subject().ID, c.Rand.Uniform(0.5, 1))
		})),
	}
}

func spawnCreatureModifiers() []modifier {
	return []modifier{
		catalog.Noop[*dispatch.Context]("none", 0.40),
		catalog.Exclusive("timer_explosion", 0.10, withSubject(timerExplosion)),
		catalog.Exclusive("attribute_boost", 0.15, withSubject(boostAttributes(
			world.AttrMovementSpeed, world.AttrMaxHealth, world.AttrAttackDamage, world.AttrKnockbackResistance))),
		catalog.Exclusive("name_tag_change", 0.10, withSubject(rename(creatureNames))),
		catalog.Exclusive("potion_effect", 0.10, withSubject(spawnPotion)),
		catalog.Exclusive("entity_type_change", 0.10, withSubject(changeKind(creatureSwaps, creatureKinds))),
	}
}

// boostAttributes scales each attribute the subject has by its own factor.
// Knockback resistance grows by 1 to 2x, everything else by 1.5 to 3x. A
// raised max health also refills the subject's health.
func boostAttributes(attrs ...world.Attribute) procedure {
	return func(c *dispatch.Context) error {
		id := c.Subject().ID
		for _, attr := range attrs {
			factor := c.Rand.Uniform(1.5, 3)
			if attr == world.AttrKnockbackResistance {
				factor = c.Rand.Uniform(1, 2)
			}
			ok, err := c.World.ScaleAttribute(id, attr, factor)
			if err != nil {
				return err
			}
			if ok && attr == world.AttrMaxHealth {
				if err := c.World.Heal(id); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func rename(names []string) procedure {
	return func(c *dispatch.Context) error {
		return c.World.SetName(c.Subject().ID, rng.PickOne(c.Rand, names))
	}
}

func spawnPotion(c *dispatch.Context) error {
	return c.World.ApplyStatus(c.Subject().ID, randomStatus(c.Rand, spawnStatuses, 10, 30))
}

func cloneSubject(c *dispatch.Context) error {
	s := c.Subject()
	_, err := c.World.Spawn(s.Kind, s.Location)
	return err
}

// changeKind replaces the subject with its swap partner, or a random kind of
// the pool when it has none
func changeKind(swaps map[world.EntityKind]world.EntityKind, pool []world.EntityKind) procedure {
	return func(c *dispatch.Context) error {
		s := c.Subject()
		kind, ok := swaps[s.Kind]
		if !ok {
			kind = rng.PickOne(c.Rand, pool)
		}
		if err := c.RemoveSubject(s.ID); err != nil {
			return err
		}
		_, err := c.World.Spawn(kind, s.Location)
		return err
	}
}

// timerExplosion puts the creature under a countdown, then blows it up
// where it spawned. It stays invulnerable until the blast.
func timerExplosion(c *dispatch.Context) error {
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
	return nil
}
