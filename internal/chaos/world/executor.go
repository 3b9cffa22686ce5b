package world

//go:generate mockgen -destination=mock/mock_executor.go -package=mock github.com/chaoscraft/chaos-engine-go/internal/chaos/world Executor

// Executor is the capability modifier effects use to change the world.
// Effects never touch world state except through an Executor.
type Executor interface {
	// Spawn creates an entity of kind at the given location
	Spawn(kind EntityKind, at Location) (EntityID, error)

	// SpawnMarker creates an invisible, gravity-free marker showing label
	SpawnMarker(at Location, label string) (EntityID, error)

	// SetName sets and shows an entity's display name
	SetName(id EntityID, name string) error

	// Remove despawns an entity
	Remove(id EntityID) error

	Velocity(id EntityID) (Vector, error)
	SetVelocity(id EntityID, v Vector) error
	Teleport(id EntityID, to Location) error
	SetInvulnerable(id EntityID, invulnerable bool) error

	// ScaleAttribute multiplies an attribute's base value by factor.
	// Reports false when the entity has no such attribute.
	ScaleAttribute(id EntityID, attr Attribute, factor float64) (bool, error)

	// Heal restores an entity to its maximum health
	Heal(id EntityID) error

	ApplyStatus(id EntityID, status Status) error
	Ignite(id EntityID, ticks int) error
	GiveItem(player EntityID, item ItemStack) error

	// Nearby returns the entities within radius of at
	Nearby(at Location, radius float64) ([]Entity, error)

	// Entities returns every entity loaded in a world
	Entities(world string) ([]Entity, error)

	// Players returns the online players across all worlds
	Players() ([]Entity, error)

	// Worlds returns the loaded world names; the first is the main world
	Worlds() ([]string, error)

	SpawnLocation(world string) (Location, error)

	// HighestBlockY returns the Y of the highest non-air block in the column at
	HighestBlockY(at Location) (float64, error)

	BlockAt(at Location) (Material, error)
	SetBlock(at Location, m Material) error
	DropItem(at Location, item ItemStack) error

	// Explode creates an explosion that breaks blocks but starts no fire
	Explode(at Location, power float64) error

	StrikeLightning(at Location) error
	PlaySound(at Location, sound Sound, volume, pitch float64) error

	Time(world string) (int64, error)
	SetTime(world string, t int64) error
	SetWeather(world string, w Weather) error

	// LaunchFirework spawns a firework rocket that flies until detonated
	LaunchFirework(at Location, fw Firework) (EntityID, error)
	Detonate(id EntityID) error
}
