package modifiers

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/catalog"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
)

const (
	scatterRange     = 5000
	spawnBlocksRange = 8
)

var (
	nightStatuses = []world.StatusType{
		world.StatusLevitation,
		world.StatusJumpBoost,
		world.StatusInvisibility,
		world.StatusSpeed,
		world.StatusBlindness,
		world.StatusSlowFalling,
		world.StatusRegeneration,
		world.StatusResistance,
	}

	nightMobs = []world.EntityKind{
		world.KindChicken,
		world.KindCow,
		world.KindPig,
		world.KindCreeper,
		world.KindSkeleton,
	}

	spawnBlocks = []world.Material{
		world.MaterialGlass,
		world.MaterialSlimeBlock,
		world.MaterialDiamondBlock,
		world.MaterialMelon,
		world.MaterialTNT,
		world.MaterialHoneyBlock,
		world.MaterialGoldBlock,
	}

	nightGifts = []world.Material{
		world.MaterialDiamond,
		world.MaterialGoldIngot,
		world.MaterialIronIngot,
		world.MaterialEmerald,
		world.MaterialApple,
		world.MaterialBread,
		world.MaterialCookedBeef,
	}
)

// Time skip effects act on the whole server, not on the event's world.
func timeSkipModifiers() []modifier {
	return []modifier{
		catalog.Exclusive("teleport_all_entities", 0.10, withPlayers(gatherAtPlayer)),
		catalog.Exclusive("random_potion_effect", 0.15, withPlayers(func(c *dispatch.Context, players []world.Entity) error {
			return applyToAll(c, players, randomStatus(c.Rand, nightStatuses, 10, 40))
		})),
		catalog.Exclusive("teleport_all_players_single_spot", 0.08, withPlayers(teleportToOneSpot)),
		catalog.Exclusive("teleport_each_player_randomly", 0.07, withPlayers(scatterPlayers)),
		catalog.Exclusive("spawn_random_mobs", 0.10, withPlayers(mobsAroundPlayers)),
		catalog.Exclusive("randomize_spawn_blocks", 0.05, randomizeSpawnBlocks),
		catalog.Exclusive("launch_all_players", 0.05, withPlayers(func(c *dispatch.Context, players []world.Entity) error {
			v := world.Vector{Y: c.Rand.Uniform(1, 3)}
			for _, p := range players {
				if err := tolerate(c.World.SetVelocity(p.ID, v)); err != nil {
					return err
				}
			}
			return nil
		})),
		catalog.Exclusive("heal_all_players", 0.08, withPlayers(func(c *dispatch.Context, players []world.Entity) error {
			for _, p := range players {
				if err := tolerate(c.World.Heal(p.ID)); err != nil {
					return err
				}
			}
			return applyToAll(c, players, world.Status{Type: world.StatusRegeneration, Ticks: 200, Amplifier: 1})
		})),
		catalog.Exclusive("give_random_items", 0.07, withPlayers(giveRandomItems)),
		catalog.Exclusive("set_storm", 0.05, setWeatherEverywhere(world.WeatherStorm)),
		catalog.Exclusive("clear_weather", 0.05, setWeatherEverywhere(world.WeatherClear)),
		catalog.Exclusive("double_player_speed", 0.06, withPlayers(func(c *dispatch.Context, players []world.Entity) error {
			return applyToAll(c, players, world.Status{Type: world.StatusSpeed, Ticks: 600, Amplifier: 1})
		})),
		catalog.Exclusive("invert_gravity", 0.04, withPlayers(func(c *dispatch.Context, players []world.Entity) error {
			return applyToAll(c, players, world.Status{Type: world.StatusJumpBoost, Ticks: 200, Amplifier: 4})
		})),
		catalog.Exclusive("advance_time", 0.03, func(c *dispatch.Context) error {
			worlds, err := c.World.Worlds()
			if err != nil {
				return err
			}
			for _, w := range worlds {
				if err := advanceTime(c, w); err != nil {
					return err
				}
			}
			return nil
		}),
		catalog.Exclusive("reverse_gravity", 0.04, reverseGravityEverywhere),
	}
}

// withPlayers skips the effect when nobody is online
func withPlayers(fn func(c *dispatch.Context, players []world.Entity) error) procedure {
	return func(c *dispatch.Context) error {
		players, err := c.World.Players()
		if err != nil {
			return err
		}
		if len(players) == 0 {
			return chaoserr.PreconditionSkip("no players online")
		}
		return fn(c, players)
	}
}

func applyToAll(c *dispatch.Context, entities []world.Entity, status world.Status) error {
	for _, e := range entities {
		if err := tolerate(c.World.ApplyStatus(e.ID, status)); err != nil {
			return err
		}
	}
	return nil
}

// gatherAtPlayer pulls every entity in a random player's world to that player
func gatherAtPlayer(c *dispatch.Context, players []world.Entity) error {
	chosen := rng.PickOne(c.Rand, players)
	entities, err := c.World.Entities(chosen.Location.World)
	if err != nil {
		return err
	}
	for _, e := range entities {
		if err := tolerate(c.World.Teleport(e.ID, chosen.Location)); err != nil {
			return err
		}
	}
	return nil
}

func scatterPoint(c *dispatch.Context, w string) world.Location {
	return world.At(w, c.Rand.Uniform(-scatterRange, scatterRange), 0, c.Rand.Uniform(-scatterRange, scatterRange))
}

// teleportToOneSpot sends everyone to one random point in the first player's world
func teleportToOneSpot(c *dispatch.Context, players []world.Entity) error {
	to := scatterPoint(c, players[0].Location.World)
	y, err := c.World.HighestBlockY(to)
	if err != nil {
		return err
	}
	to.Y = y + 1
	for _, p := range players {
		if err := tolerate(c.World.Teleport(p.ID, to)); err != nil {
			return err
		}
	}
	return nil
}

func scatterPlayers(c *dispatch.Context, players []world.Entity) error {
	for _, p := range players {
		if err := teleportToSurface(c, p.ID, scatterPoint(c, p.Location.World)); err != nil {
			return err
		}
	}
	return nil
}

// mobsAroundPlayers surrounds up to three random players with 3 to 8 mobs each
func mobsAroundPlayers(c *dispatch.Context, players []world.Entity) error {
	shuffled := append([]world.Entity(nil), players...)
	shuffle(c.Rand, shuffled)
	affected := 1 + c.Rand.Intn(min(3, len(shuffled)))

	for _, p := range shuffled[:affected] {
		n := rng.Between(c.Rand, 3, 8)
		for i := 0; i < n; i++ {
			kind := rng.PickOne(c.Rand, nightMobs)
			at := p.Location.Add(float64(c.Rand.Intn(5)-2), 0, float64(c.Rand.Intn(5)-2))
			y, err := c.World.HighestBlockY(at)
			if err != nil {
				return err
			}
			at.Y = y + 1
			if _, err := c.World.Spawn(kind, at); err != nil {
				return err
			}
		}
	}
	return nil
}

// randomizeSpawnBlocks repaints the 17x17 surface layer around the main
// world's spawn point
func randomizeSpawnBlocks(c *dispatch.Context) error {
	worlds, err := c.World.Worlds()
	if err != nil {
		return err
	}
	if len(worlds) == 0 {
		return chaoserr.PreconditionSkip("no worlds loaded")
	}
	spawn, err := c.World.SpawnLocation(worlds[0])
	if err != nil {
		return err
	}
	top, err := c.World.HighestBlockY(spawn)
	if err != nil {
		return err
	}

	for x := -spawnBlocksRange; x <= spawnBlocksRange; x++ {
		for z := -spawnBlocksRange; z <= spawnBlocksRange; z++ {
			at := spawn.Add(float64(x), 0, float64(z))
			at.Y = top - 1
			if err := c.World.SetBlock(at, rng.PickOne(c.Rand, spawnBlocks)); err != nil {
				return err
			}
		}
	}
	return nil
}

func giveRandomItems(c *dispatch.Context, players []world.Entity) error {
	for _, p := range players {
		n := rng.Between(c.Rand, 1, 3)
		for i := 0; i < n; i++ {
			if err := tolerate(c.World.GiveItem(p.ID, world.Item(rng.PickOne(c.Rand, nightGifts)))); err != nil {
				return err
			}
		}
	}
	return nil
}

func setWeatherEverywhere(w world.Weather) procedure {
	return func(c *dispatch.Context) error {
		worlds, err := c.World.Worlds()
		if err != nil {
			return err
		}
		for _, name := range worlds {
			if err := c.World.SetWeather(name, w); err != nil {
				return err
			}
		}
		return nil
	}
}

// reverseGravityEverywhere throws every non-player mob in every world upward
func reverseGravityEverywhere(c *dispatch.Context) error {
	worlds, err := c.World.Worlds()
	if err != nil {
		return err
	}
	for _, name := range worlds {
		entities, err := c.World.Entities(name)
		if err != nil {
			return err
		}
		for _, e := range entities {
			if !e.Living() || e.IsPlayer() {
				continue
			}
			if err := launch(c, e.ID, 2); err != nil {
				return err
			}
		}
	}
	return nil
}

func shuffle[T any](src rng.Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
