package event

import (
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/google/uuid"
)

// Type indicates the category of a world event
type Type string

const (
	BlockBreak       Type = "BLOCK_BREAK"
	EntityExplode    Type = "ENTITY_EXPLODE"
	BlockExplode     Type = "BLOCK_EXPLODE"
	CreatureSpawn    Type = "CREATURE_SPAWN"
	EntityDamage     Type = "ENTITY_DAMAGE"
	EntityDeath      Type = "ENTITY_DEATH"
	ProjectileLaunch Type = "PROJECTILE_LAUNCH"
	ProjectileHit    Type = "PROJECTILE_HIT"
	ProjectileDamage Type = "PROJECTILE_DAMAGE"
	TimeSkip         Type = "TIME_SKIP"

	// SubjectRemoved is raised by the world when an entity is destroyed
	SubjectRemoved Type = "SUBJECT_REMOVED"
)

// Types lists every event type in dispatch registration order
var Types = []Type{
	BlockBreak,
	EntityExplode,
	BlockExplode,
	CreatureSpawn,
	EntityDamage,
	EntityDeath,
	ProjectileLaunch,
	ProjectileHit,
	ProjectileDamage,
	TimeSkip,
	SubjectRemoved,
}

// SkipReason explains why world time jumped
type SkipReason string

const (
	SkipNight   SkipReason = "NIGHT_SKIP"
	SkipCommand SkipReason = "COMMAND"
	SkipCustom  SkipReason = "CUSTOM"
)

// Event is a world event plus the outcome parameters that modifiers may
// rewrite. Effects for one event run in order against the same Event, so a
// later effect sees what an earlier one wrote.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Tick      uint64    `json:"tick"`
	Timestamp time.Time `json:"timestamp"`

	// Subject is the entity the event is about: the spawned, damaged or
	// dead entity, the exploding entity, or the projectile.
	Subject world.Entity `json:"subject"`

	// Location is the broken block, the explosion center or the time-skip world
	Location world.Location `json:"location"`
	Block    world.Material `json:"block,omitempty"`

	// Shooter is set on projectile launches fired by someone
	Shooter world.EntityID `json:"shooter,omitempty"`

	// Damager is the projectile on a projectile damage event
	Damager *world.Entity `json:"damager,omitempty"`

	HitBlock  *world.Location `json:"hit_block,omitempty"`
	HitEntity *world.Entity   `json:"hit_entity,omitempty"`

	Blocks     []world.Location  `json:"blocks,omitempty"`
	Drops      []world.ItemStack `json:"drops,omitempty"`
	SkipReason SkipReason        `json:"skip_reason,omitempty"`

	// Outcome parameters
	Yield       float64 `json:"yield"`
	Damage      float64 `json:"damage"`
	XP          int     `json:"xp"`
	DropItems   bool    `json:"drop_items"`
	Cancelled   bool    `json:"cancelled"`
	SubjectGone bool    `json:"subject_gone"`
}

// New creates an event with common fields populated
func New(t Type) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		DropItems: true,
	}
}

// NewBlockBreak creates a block break event for the block at
func NewBlockBreak(at world.Location, block world.Material, xp int) *Event {
	ev := New(BlockBreak)
	ev.Location = at.Block()
	ev.Block = block
	ev.XP = xp
	return ev
}

// NewEntityExplosion creates an explosion caused by an entity such as a creeper
func NewEntityExplosion(source world.Entity, yield float64, blocks []world.Location) *Event {
	ev := New(EntityExplode)
	ev.Subject = source
	ev.Location = source.Location
	ev.Yield = yield
	ev.Blocks = blocks
	return ev
}

// NewBlockExplosion creates an explosion caused by a block such as a bed
func NewBlockExplosion(at world.Location, yield float64, blocks []world.Location) *Event {
	ev := New(BlockExplode)
	ev.Location = at.BlockCenter()
	ev.Yield = yield
	ev.Blocks = blocks
	return ev
}

// NewSpawn creates a creature spawn event
func NewSpawn(subject world.Entity) *Event {
	ev := New(CreatureSpawn)
	ev.Subject = subject
	ev.Location = subject.Location
	return ev
}

// NewDamage creates a damage event for subject
func NewDamage(subject world.Entity, damage float64) *Event {
	ev := New(EntityDamage)
	ev.Subject = subject
	ev.Location = subject.Location
	ev.Damage = damage
	return ev
}

// NewDeath creates a death event with the drops the entity leaves
func NewDeath(subject world.Entity, drops []world.ItemStack) *Event {
	ev := New(EntityDeath)
	ev.Subject = subject
	ev.Location = subject.Location
	ev.Drops = drops
	return ev
}

// NewProjectileLaunch creates a launch event. shooter is empty when nobody fired it.
func NewProjectileLaunch(projectile world.Entity, shooter world.EntityID) *Event {
	ev := New(ProjectileLaunch)
	ev.Subject = projectile
	ev.Location = projectile.Location
	ev.Shooter = shooter
	return ev
}

// NewProjectileHit creates an impact event. At most one of hitBlock and
// hitEntity is usually set.
func NewProjectileHit(projectile world.Entity, hitBlock *world.Location, hitEntity *world.Entity) *Event {
	ev := New(ProjectileHit)
	ev.Subject = projectile
	ev.Location = projectile.Location
	ev.HitBlock = hitBlock
	ev.HitEntity = hitEntity
	return ev
}

// NewProjectileDamage creates a damage event where a projectile hurt target
func NewProjectileDamage(target, projectile world.Entity, damage float64) *Event {
	ev := New(ProjectileDamage)
	ev.Subject = target
	ev.Location = target.Location
	ev.Damager = &projectile
	ev.Damage = damage
	return ev
}

// NewTimeSkip creates a time skip event for a world
func NewTimeSkip(w string, reason SkipReason) *Event {
	ev := New(TimeSkip)
	ev.Location = world.Location{World: w}
	ev.SkipReason = reason
	return ev
}

// NewSubjectRemoved creates the destruction notice for an entity
func NewSubjectRemoved(subject world.Entity) *Event {
	ev := New(SubjectRemoved)
	ev.Subject = subject
	ev.Location = subject.Location
	return ev
}

// ImpactLocation returns where a projectile hit: the center of the hit block,
// else the hit entity, else the projectile itself.
func (e *Event) ImpactLocation() world.Location {
	switch {
	case e.HitBlock != nil:
		return e.HitBlock.BlockCenter()
	case e.HitEntity != nil:
		return e.HitEntity.Location
	default:
		return e.Subject.Location
	}
}

// DestroysSubject reports whether the subject no longer exists once the
// event has been handled
func (e *Event) DestroysSubject() bool {
	return e.Type == SubjectRemoved || e.Type == EntityDeath || e.SubjectGone
}
