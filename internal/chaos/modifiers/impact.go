package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

const (
	fireworkFuse  = 5
	villagerShout = "No, sir!"
)

var impactDrops = []world.Material{
	world.MaterialDiamond,
	world.MaterialGoldIngot,
	world.MaterialIronIngot,
	world.MaterialEmerald,
	world.MaterialApple,
}

var impactSounds = []world.Sound{
	world.SoundCatAmbient,
	world.SoundCowAmbient,
	world.SoundChickenAmbient,
	world.SoundPigAmbient,
	world.SoundParrotAmbient,
}

// The impact table has no none entry; every hit gets exactly one effect.
func projectileImpactModifiers() []modifier {
	return []modifier{
		catalog.Exclusive("explosive_impact", 0.10, atImpact(func(c *dispatch.Context, at world.Location) error {
			return c.World.Explode(at, c.Rand.Uniform(3, 10))
		})),
		catalog.Exclusive("teleport_nearby", 0.07, atImpact(teleportNearby)),
		catalog.Exclusive("summon_cows", 0.08, atImpact(spawnHerd(world.KindCow, 3, 5))),
		catalog.Exclusive("summon_chickens", 0.08, atImpact(spawnHerd(world.KindChicken, 5, 10))),
		catalog.Exclusive("drop_item_rain", 0.12, atImpact(itemRain)),
		catalog.Exclusive("play_funny_sound", 0.10, atImpact(func(c *dispatch.Context, at world.Location) error {
			return c.World.PlaySound(at, rng.PickOne(c.Rand, impactSounds), 1, 1)
		})),
		catalog.Exclusive("launch_firework", 0.07, atImpact(launchFirework)),
		catalog.Exclusive("create_fire", 0.06, atImpact(createFire)),
		catalog.Exclusive("summon_lightning", 0.05, atImpact(func(c *dispatch.Context, at world.Location) error {
			return c.World.StrikeLightning(at)
		})),
		catalog.Exclusive("reverse_gravity", 0.04, atImpact(func(c *dispatch.Context, at world.Location) error {
			return launchNearby(c, at, 7, 2)
		})),
		catalog.Exclusive("spawn_slime", 0.06, atImpact(spawnHerd(world.KindSlime, 2, 5))),
		catalog.Exclusive("spawn_villager_shout", 0.05, atImpact(func(c *dispatch.Context, at world.Location) error {
			id, err := c.World.Spawn(world.KindVillager, at)
			if err != nil {
				return err
			}
			return c.World.SetName(id, villagerShout)
		})),
		catalog.Exclusive("grow_tall", 0.08, growTall),
		catalog.Exclusive("advance_time", 0.03, atImpact(func(c *dispatch.Context, at world.Location) error {
			return advanceTime(c, at.World)
		})),
		catalog.Exclusive("confuse_players", 0.07, atImpact(confuseNearby)),
	}
}

func atImpact(fn func(c *dispatch.Context, at world.Location) error) procedure {
	return func(c *dispatch.Context) error {
		at := c.Event.ImpactLocation()
		if err := c.RequireWorld(at); err != nil {
			return err
		}
		return fn(c, at)
	}
}

func spawnHerd(kind world.EntityKind, lo, hi int) func(c *dispatch.Context, at world.Location) error {
	return func(c *dispatch.Context, at world.Location) error {
		n := rng.Between(c.Rand, lo, hi)
		for i := 0; i < n; i++ {
			if _, err := c.World.Spawn(kind, at); err != nil {
				return err
			}
		}
		return nil
	}
}

// mobsNearby returns the living, non-projectile entities around at
func mobsNearby(c *dispatch.Context, at world.Location, radius float64) ([]world.Entity, error) {
	living, err := livingNearby(c, at, radius)
	if err != nil {
		return nil, err
	}
	out := living[:0]
	for _, e := range living {
		if !e.IsProjectile() {
			out = append(out, e)
		}
	}
	return out, nil
}

// teleportNearby scatters everything around the impact up to 50 blocks away,
// landing each on the surface
func teleportNearby(c *dispatch.Context, at world.Location) error {
	mobs, err := mobsNearby(c, at, 5)
	if err != nil {
		return err
	}
	for _, e := range mobs {
		to := at.Add(c.Rand.Uniform(-50, 50), 0, c.Rand.Uniform(-50, 50))
		if err := teleportToSurface(c, e.ID, to); err != nil {
			return err
		}
	}
	return nil
}

// teleportToSurface moves id to the first free block above the column at to
func teleportToSurface(c *dispatch.Context, id world.EntityID, to world.Location) error {
	y, err := c.World.HighestBlockY(to)
	if err != nil {
		return err
	}
	to.Y = y + 1
	return tolerate(c.World.Teleport(id, to))
}

func itemRain(c *dispatch.Context, at world.Location) error {
	n := rng.Between(c.Rand, 3, 6)
	for i := 0; i < n; i++ {
		item := world.Item(rng.PickOne(c.Rand, impactDrops))
		if err := c.World.DropItem(at.Add(0, 10, 0), item); err != nil {
			return err
		}
	}
	return nil
}

func randomColor(src rng.Source) uint32 {
	return uint32(src.Intn(256))<<16 | uint32(src.Intn(256))<<8 | uint32(src.Intn(256))
}

func launchFirework(c *dispatch.Context, at world.Location) error {
	fw := world.Firework{
		Power:   rng.Between(c.Rand, 1, 3),
		Color:   randomColor(c.Rand),
		Fade:    randomColor(c.Rand),
		Shape:   rng.PickOne(c.Rand, world.FireworkShapes),
		Flicker: c.Rand.Chance(0.5),
		Trail:   c.Rand.Chance(0.5),
	}
	id, err := c.World.LaunchFirework(at, fw)
	if err != nil {
		return err
	}

	w := c.World
	_, err = c.Tasks.ScheduleOnce(fireworkFuse, func() error {
		return tolerate(w.Detonate(id))
	})
	return err
}

// createFire lights the air blocks of the 3x3 square at the impact height
func createFire(c *dispatch.Context, at world.Location) error {
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			spot := at.Add(float64(x), 0, float64(z))
			m, err := c.World.BlockAt(spot)
			if err != nil {
				return err
			}
			if m != world.MaterialAir {
				continue
			}
			if err := c.World.SetBlock(spot, world.MaterialFire); err != nil {
				return err
			}
		}
	}
	return nil
}

func launchNearby(c *dispatch.Context, at world.Location, radius, y float64) error {
	mobs, err := mobsNearby(c, at, radius)
	if err != nil {
		return err
	}
	for _, e := range mobs {
		if err := launch(c, e.ID, y); err != nil {
			return err
		}
	}
	return nil
}

// growTall only acts on a hit dirt or grass block
func growTall(c *dispatch.Context) error {
	if c.Event.HitBlock == nil {
		return chaoserr.PreconditionSkip("projectile hit no block")
	}
	block := c.Event.HitBlock.Block()
	if err := c.RequireWorld(block); err != nil {
		return err
	}
	m, err := c.World.BlockAt(block)
	if err != nil {
		return err
	}
	if m != world.MaterialDirt && m != world.MaterialGrassBlock {
		return chaoserr.PreconditionSkip("hit block cannot grow grass")
	}
	if err := c.World.SetBlock(block, world.MaterialGrassBlock); err != nil {
		return err
	}
	return c.World.SetBlock(block.Add(0, 1, 0), world.MaterialTallGrass)
}

// advanceTime moves a world's clock forward by 6000 to 11999 ticks
func advanceTime(c *dispatch.Context, name string) error {
	now, err := c.World.Time(name)
	if err != nil {
		return err
	}
	return c.World.SetTime(name, now+int64(6000+c.Rand.Intn(6000)))
}

func confuseNearby(c *dispatch.Context, at world.Location) error {
	mobs, err := mobsNearby(c, at, 10)
	if err != nil {
		return err
	}
	for _, e := range mobs {
		status := world.Status{Type: world.StatusNausea, Ticks: 200, Amplifier: 5}
		if err := tolerate(c.World.ApplyStatus(e.ID, status)); err != nil {
			return err
		}
	}
	return nil
}
