// Package sim generates a synthetic stream of world events against a
// NullExecutor so the engine can be driven without a game server.
package sim

import (
	"context"
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/weighted"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"go.uber.org/zap"
)

const (
	surfaceY   = 64
	spreadXZ   = 48
	blastCount = 6
)

// Submitter accepts generated events
type Submitter interface {
	Submit(ctx context.Context, ev *event.Event) error
}

// DefaultMix is the relative frequency of each generated event type
var DefaultMix = []weighted.Entry[event.Type]{
	{ID: event.BlockBreak, Weight: 0.24},
	{ID: event.CreatureSpawn, Weight: 0.20},
	{ID: event.EntityDamage, Weight: 0.15},
	{ID: event.EntityDeath, Weight: 0.08},
	{ID: event.ProjectileLaunch, Weight: 0.10},
	{ID: event.ProjectileHit, Weight: 0.08},
	{ID: event.ProjectileDamage, Weight: 0.06},
	{ID: event.EntityExplode, Weight: 0.03},
	{ID: event.BlockExplode, Weight: 0.02},
	{ID: event.TimeSkip, Weight: 0.02},
	{ID: event.SubjectRemoved, Weight: 0.02},
}

var (
	mobKinds = []world.EntityKind{
		world.KindCow, world.KindPig, world.KindSheep, world.KindChicken,
		world.KindZombie, world.KindCreeper, world.KindSkeleton, world.KindSpider,
		world.KindSlime, world.KindVillager,
	}
	projectileKinds = []world.EntityKind{
		world.KindArrow, world.KindSnowball, world.KindEgg, world.KindFireball,
	}
	brokenBlocks = []world.Material{
		world.MaterialStone, world.MaterialDirt, world.MaterialGrassBlock, world.MaterialDiamondOre,
	}
	deathDrops = []world.Material{
		world.MaterialApple, world.MaterialBread, world.MaterialCookedBeef, world.MaterialIronIngot,
	}
	skipReasons = []event.SkipReason{event.SkipNight, event.SkipCommand, event.SkipCustom}
)

// Feed builds plausible events from the entities in a NullExecutor. Feed
// is not safe for concurrent use; the executor is.
type Feed struct {
	logger *zap.Logger
	world  *world.NullExecutor
	rand   rng.Source
	worlds []string
	mix    *weighted.Table[event.Type]
}

// NewFeed creates a feed over the given worlds. src must not be shared with
// the dispatcher.
func NewFeed(logger *zap.Logger, w *world.NullExecutor, src rng.Source, worlds []string) (*Feed, error) {
	if w == nil || src == nil {
		return nil, chaoserr.InvalidArgumentf("feed requires a world and a random source")
	}
	if len(worlds) == 0 {
		return nil, chaoserr.InvalidArgumentf("feed requires at least one world")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	mix, err := weighted.New(DefaultMix...)
	if err != nil {
		return nil, err
	}
	return &Feed{
		logger: logger,
		world:  w,
		rand:   src,
		worlds: append([]string(nil), worlds...),
		mix:    mix,
	}, nil
}

// Populate places n players at the spawn point of every world
func (f *Feed) Populate(n int) []world.EntityID {
	var ids []world.EntityID
	for _, w := range f.worlds {
		for i := 0; i < n; i++ {
			at := world.At(w, float64(i), surfaceY+1, 0)
			ids = append(ids, f.world.Add(world.Entity{Kind: world.KindPlayer, Location: at}))
		}
	}
	return ids
}

// Next generates one event. Types that need an existing entity fall back to
// a spawn when the world has none.
func (f *Feed) Next() *event.Event {
	t, _ := f.mix.Select(f.rand)
	w := rng.PickOne(f.rand, f.worlds)

	switch t {
	case event.BlockBreak:
		at := f.surface(w).Add(0, -1, 0)
		return event.NewBlockBreak(at, rng.PickOne(f.rand, brokenBlocks), f.rand.Intn(4))

	case event.EntityDamage:
		if e, ok := f.pickMob(w); ok {
			return event.NewDamage(e, f.rand.Uniform(1, 10))
		}

	case event.EntityDeath:
		if e, ok := f.pickMob(w); ok {
			f.remove(e.ID)
			drops := []world.ItemStack{world.Item(rng.PickOne(f.rand, deathDrops))}
			return event.NewDeath(e, drops)
		}

	case event.ProjectileLaunch:
		p := f.add(rng.PickOne(f.rand, projectileKinds), f.surface(w).Add(0, 1, 0))
		if err := f.world.SetVelocity(p.ID, world.Vector{X: f.rand.Uniform(-1, 1), Y: 0.5, Z: f.rand.Uniform(-1, 1)}); err != nil {
			f.logger.Debug("failed to set projectile velocity", zap.Error(err))
		}
		var shooter world.EntityID
		if players, _ := f.world.Players(); len(players) > 0 {
			shooter = rng.PickOne(f.rand, players).ID
		}
		return event.NewProjectileLaunch(p, shooter)

	case event.ProjectileHit:
		if p, ok := f.pick(w, world.Entity.IsProjectile); ok {
			if target, ok := f.pickMob(w); ok && f.rand.Chance(0.5) {
				return event.NewProjectileHit(p, nil, &target)
			}
			block := p.Location.Block()
			block.Y = surfaceY
			return event.NewProjectileHit(p, &block, nil)
		}

	case event.ProjectileDamage:
		p, okP := f.pick(w, world.Entity.IsProjectile)
		target, okT := f.pickMob(w)
		if okP && okT {
			return event.NewProjectileDamage(target, p, f.rand.Uniform(2, 8))
		}

	case event.EntityExplode:
		creeper := f.add(world.KindCreeper, f.surface(w))
		return event.NewEntityExplosion(creeper, 3, f.blast(creeper.Location))

	case event.BlockExplode:
		at := f.surface(w)
		return event.NewBlockExplosion(at, 5, f.blast(at))

	case event.TimeSkip:
		return event.NewTimeSkip(w, rng.PickOne(f.rand, skipReasons))

	case event.SubjectRemoved:
		if e, ok := f.pick(w, func(e world.Entity) bool { return !e.IsPlayer() }); ok {
			f.remove(e.ID)
			return event.NewSubjectRemoved(e)
		}
	}

	mob := f.add(rng.PickOne(f.rand, mobKinds), f.surface(w))
	return event.NewSpawn(mob)
}

// Run submits events at rate per second until duration elapses or ctx is
// done. A zero duration runs until ctx is done. It returns the number of
// events submitted.
func (f *Feed) Run(ctx context.Context, sink Submitter, rate int, duration time.Duration) (int, error) {
	if rate <= 0 {
		return 0, nil
	}
	interval := time.Second / time.Duration(rate)
	if interval <= 0 {
		return 0, chaoserr.InvalidArgumentf("event rate %d/s is too high for a ticker", rate)
	}

	var deadline <-chan time.Time
	if duration > 0 {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case <-deadline:
			f.logger.Info("feed finished", zap.Int("events", sent))
			return sent, nil
		case <-ticker.C:
			if err := sink.Submit(ctx, f.Next()); err != nil {
				return sent, err
			}
			sent++
		}
	}
}

func (f *Feed) surface(w string) world.Location {
	return world.At(w, f.rand.Uniform(-spreadXZ, spreadXZ), surfaceY+1, f.rand.Uniform(-spreadXZ, spreadXZ))
}

func (f *Feed) add(kind world.EntityKind, at world.Location) world.Entity {
	e := world.Entity{Kind: kind, Location: at}
	e.ID = f.world.Add(e)
	return e
}

func (f *Feed) remove(id world.EntityID) {
	if err := f.world.Remove(id); err != nil {
		f.logger.Debug("failed to remove entity", zap.String("entity_id", string(id)), zap.Error(err))
	}
}

func (f *Feed) pick(w string, match func(world.Entity) bool) (world.Entity, bool) {
	all, err := f.world.Entities(w)
	if err != nil {
		return world.Entity{}, false
	}
	candidates := all[:0]
	for _, e := range all {
		if match(e) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return world.Entity{}, false
	}
	return rng.PickOne(f.rand, candidates), true
}

// pickMob picks a living entity that is not a player
func (f *Feed) pickMob(w string) (world.Entity, bool) {
	return f.pick(w, func(e world.Entity) bool { return e.Living() && !e.IsPlayer() })
}

func (f *Feed) blast(center world.Location) []world.Location {
	blocks := make([]world.Location, 0, blastCount)
	for i := 0; i < blastCount; i++ {
		at := center.Add(float64(f.rand.Intn(5)-2), -1, float64(f.rand.Intn(5)-2))
		blocks = append(blocks, at.Block())
	}
	return blocks
}
