package modifiers

import (
	"math"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
)

var explosionReplacements = []world.Material{
	world.MaterialDiamondOre,
	world.MaterialObsidian,
	world.MaterialBedrock,
}

var explosionRandomBlocks = []world.Material{
	world.MaterialGlass,
	world.MaterialTNT,
	world.MaterialSlimeBlock,
	world.MaterialHoneyBlock,
	world.MaterialDiamondBlock,
	world.MaterialGoldBlock,
	world.MaterialEmeraldBlock,
}

// Yield modifiers rescale the blast. Effect modifiers replace it: they act
// within the unscaled blast radius and then zero the yield.
func explosionModifiers() []modifier {
	return []modifier{
		catalog.Noop[*dispatch.Context]("none", 0.50),
		catalog.Exclusive("increase", 0.06, scaleYield(func(src rng.Source) float64 {
			return float64(rng.Between(src, 2, 7))
		})),
		catalog.Exclusive("decrease", 0.06, scaleYield(func(src rng.Source) float64 {
			return src.Uniform(0.5, 1)
		})),
		catalog.Exclusive("random", 0.06, scaleYield(func(src rng.Source) float64 {
			return src.Uniform(0, 5)
		})),
		catalog.Exclusive("replace_blocks", 0.04, blastEffect(replaceBlocks)),
		catalog.Exclusive("spawn_random_mobs", 0.06, blastEffect(spawnBlastMobs)),
		catalog.Exclusive("heal_entities", 0.06, blastEffect(healInBlast)),
		catalog.Exclusive("launch_entities", 0.04, blastEffect(launchInBlast)),
		catalog.Exclusive("set_fire_in_radius", 0.04, blastEffect(setFireInRadius)),
		catalog.Exclusive("change_blocks_to_random", 0.08, blastEffect(randomizeBlastBlocks)),
	}
}

func scaleYield(factor func(src rng.Source) float64) procedure {
	return func(c *dispatch.Context) error {
		c.Event.Yield *= factor(c.Rand)
		return nil
	}
}

func blastEffect(fn func(c *dispatch.Context, center world.Location, radius float64) error) procedure {
	return func(c *dispatch.Context) error {
		center := c.Event.Location
		if err := c.RequireWorld(center); err != nil {
			return err
		}
		if err := fn(c, center, c.Event.Yield); err != nil {
			return err
		}
		c.Event.Yield = 0
		return nil
	}
}

// replaceBlocks turns the destroyed blocks inside the radius into one rare material
func replaceBlocks(c *dispatch.Context, center world.Location, radius float64) error {
	m := rng.PickOne(c.Rand, explosionReplacements)
	for _, b := range c.Event.Blocks {
		if b.BlockCenter().Distance(center) > radius {
			continue
		}
		if err := c.World.SetBlock(b, m); err != nil {
			return err
		}
	}
	return nil
}

func randomizeBlastBlocks(c *dispatch.Context, center world.Location, radius float64) error {
	for _, b := range c.Event.Blocks {
		if b.BlockCenter().Distance(center) > radius {
			continue
		}
		if err := c.World.SetBlock(b, rng.PickOne(c.Rand, explosionRandomBlocks)); err != nil {
			return err
		}
	}
	return nil
}

func spawnBlastMobs(c *dispatch.Context, center world.Location, radius float64) error {
	n := rng.Between(c.Rand, 3, 7)
	for i := 0; i < n; i++ {
		at := center.Add(
			c.Rand.Uniform(-1, 1)*radius,
			c.Rand.Uniform(-1, 1)*radius,
			c.Rand.Uniform(-1, 1)*radius,
		)
		if _, err := c.World.Spawn(world.KindZombie, at); err != nil {
			return err
		}
	}
	return nil
}

func healInBlast(c *dispatch.Context, center world.Location, radius float64) error {
	living, err := livingNearby(c, center, radius)
	if err != nil {
		return err
	}
	for _, e := range living {
		if err := tolerate(c.World.Heal(e.ID)); err != nil {
			return err
		}
	}
	return nil
}

func launchInBlast(c *dispatch.Context, center world.Location, radius float64) error {
	living, err := livingNearby(c, center, radius)
	if err != nil {
		return err
	}
	for _, e := range living {
		if err := launch(c, e.ID, 2); err != nil {
			return err
		}
	}
	return nil
}

// launch keeps an entity's horizontal motion and sets its vertical speed
func launch(c *dispatch.Context, id world.EntityID, y float64) error {
	v, err := c.World.Velocity(id)
	if err != nil {
		return tolerate(err)
	}
	return tolerate(c.World.SetVelocity(id, v.WithY(y)))
}

func setFireInRadius(c *dispatch.Context, center world.Location, radius float64) error {
	r := int(math.Ceil(radius))
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				at := center.Add(float64(x), float64(y), float64(z))
				if at.Distance(center) > radius {
					continue
				}
				m, err := c.World.BlockAt(at)
				if err != nil {
					return err
				}
				if m != world.MaterialAir {
					continue
				}
				if err := c.World.SetBlock(at, world.MaterialFire); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
