package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
)

var blockBreakMobs = []world.EntityKind{
	world.KindCow,
	world.KindPig,
	world.KindZombie,
	world.KindCreeper,
	world.KindSkeleton,
	world.KindSpider,
	world.KindWither,
}

var blockBreakDrops = []world.Material{
	world.MaterialDiamond,
	world.MaterialEmerald,
	world.MaterialGoldIngot,
	world.MaterialIronIngot,
	world.MaterialApple,
}

func blockBreakModifiers() []modifier {
	return []modifier{
		catalog.Noop[*dispatch.Context]("none", 0.20),
		catalog.Exclusive("spawn_random_mob", 0.15, spawnRandomMob),
		catalog.Exclusive("timed_explosion", 0.10, timedExplosion),
		catalog.Exclusive("change_drops", 0.20, changeDrops),
		catalog.Exclusive("change_xp", 0.20, changeXP),
		catalog.Exclusive("summon_lightning", 0.10, blockLightning),
	}
}

func spawnRandomMob(c *dispatch.Context) error {
	at := c.Event.Location
	if err := c.RequireWorld(at); err != nil {
		return err
	}
	_, err := c.World.Spawn(rng.PickOne(c.Rand, blockBreakMobs), at.Add(0.5, 0, 0.5))
	return err
}

func timedExplosion(c *dispatch.Context) error {
	at := c.Event.Location
	if err := c.RequireWorld(at); err != nil {
		return err
	}
	_, err := countdownExplosion(c, at.BlockCenter(), nil)
	return err
}

// changeDrops replaces the block's own drops with one to three valuables
func changeDrops(c *dispatch.Context) error {
	at := c.Event.Location
	if err := c.RequireWorld(at); err != nil {
		return err
	}
	c.Event.DropItems = false

	n := rng.Between(c.Rand, 1, 3)
	for i := 0; i < n; i++ {
		item := world.Item(rng.PickOne(c.Rand, blockBreakDrops))
		if err := c.World.DropItem(at.BlockCenter(), item); err != nil {
			return err
		}
	}
	return nil
}

func changeXP(c *dispatch.Context) error {
	c.Event.XP = c.Rand.Intn(31)
	return nil
}

func blockLightning(c *dispatch.Context) error {
	at := c.Event.Location
	if err := c.RequireWorld(at); err != nil {
		return err
	}
	dx := float64(c.Rand.Intn(3) - 1)
	dz := float64(c.Rand.Intn(3) - 1)
	return c.World.StrikeLightning(at.Add(dx, 0, dz))
}
