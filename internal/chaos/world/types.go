package world

import (
	"math"
)

// EntityID is a stable, comparable reference to an entity in the world.
// It stays equal for the entity's whole lifetime.
type EntityID string

// Location is a point in a named world. An empty World means the location
// could not be resolved.
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// At builds a location in world w
func At(w string, x, y, z float64) Location {
	return Location{World: w, X: x, Y: y, Z: z}
}

// Valid reports whether the location belongs to a world
func (l Location) Valid() bool {
	return l.World != ""
}

// Add returns the location offset by the given deltas
func (l Location) Add(dx, dy, dz float64) Location {
	return Location{World: l.World, X: l.X + dx, Y: l.Y + dy, Z: l.Z + dz}
}

// Block returns the corner of the block containing l
func (l Location) Block() Location {
	return Location{World: l.World, X: math.Floor(l.X), Y: math.Floor(l.Y), Z: math.Floor(l.Z)}
}

// BlockCenter returns the center of the block containing l
func (l Location) BlockCenter() Location {
	return l.Block().Add(0.5, 0.5, 0.5)
}

// Distance returns the euclidean distance between two locations.
// Locations in different worlds are infinitely far apart.
func (l Location) Distance(o Location) float64 {
	if l.World != o.World {
		return math.Inf(1)
	}
	return l.Vector().Sub(o.Vector()).Length()
}

// Vector returns the coordinates as a vector
func (l Location) Vector() Vector {
	return Vector{X: l.X, Y: l.Y, Z: l.Z}
}

// Vector is a 3D velocity or direction
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by f
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Length returns the magnitude of v
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vector) Normalize() Vector {
	n := v.Length()
	if n == 0 {
		return Vector{}
	}
	return v.Scale(1 / n)
}

// WithY returns v with its Y component replaced
func (v Vector) WithY(y float64) Vector {
	v.Y = y
	return v
}

// Category groups entity kinds by how modifiers treat them
type Category string

const (
	CategoryAnimal     Category = "animal"
	CategoryMonster    Category = "monster"
	CategoryVillager   Category = "villager"
	CategoryPlayer     Category = "player"
	CategoryProjectile Category = "projectile"
	CategoryObject     Category = "object"
)

// EntityKind names a type of entity
type EntityKind string

const (
	KindCow      EntityKind = "cow"
	KindPig      EntityKind = "pig"
	KindSheep    EntityKind = "sheep"
	KindChicken  EntityKind = "chicken"
	KindZombie   EntityKind = "zombie"
	KindCreeper  EntityKind = "creeper"
	KindSkeleton EntityKind = "skeleton"
	KindSpider   EntityKind = "spider"
	KindWither   EntityKind = "wither"
	KindSlime    EntityKind = "slime"
	KindVillager EntityKind = "villager"
	KindPlayer   EntityKind = "player"

	KindArrow         EntityKind = "arrow"
	KindSpectralArrow EntityKind = "spectral_arrow"
	KindFireball      EntityKind = "fireball"
	KindSmallFireball EntityKind = "small_fireball"
	KindWitherSkull   EntityKind = "wither_skull"
	KindSnowball      EntityKind = "snowball"
	KindEgg           EntityKind = "egg"

	KindArmorStand EntityKind = "armor_stand"
	KindFirework   EntityKind = "firework_rocket"
	KindItem       EntityKind = "item"
)

var kindCategories = map[EntityKind]Category{
	KindCow:      CategoryAnimal,
	KindPig:      CategoryAnimal,
	KindSheep:    CategoryAnimal,
	KindChicken:  CategoryAnimal,
	KindZombie:   CategoryMonster,
	KindCreeper:  CategoryMonster,
	KindSkeleton: CategoryMonster,
	KindSpider:   CategoryMonster,
	KindWither:   CategoryMonster,
	KindSlime:    CategoryMonster,
	KindVillager: CategoryVillager,
	KindPlayer:   CategoryPlayer,

	KindArrow:         CategoryProjectile,
	KindSpectralArrow: CategoryProjectile,
	KindFireball:      CategoryProjectile,
	KindSmallFireball: CategoryProjectile,
	KindWitherSkull:   CategoryProjectile,
	KindSnowball:      CategoryProjectile,
	KindEgg:           CategoryProjectile,
}

// Category returns the category of the kind. Unknown kinds are objects.
func (k EntityKind) Category() Category {
	if c, ok := kindCategories[k]; ok {
		return c
	}
	return CategoryObject
}

// Entity is a snapshot of an entity taken when an event was raised
type Entity struct {
	ID       EntityID   `json:"id"`
	Kind     EntityKind `json:"kind"`
	Location Location   `json:"location"`
}

// Category returns the entity's category
func (e Entity) Category() Category {
	return e.Kind.Category()
}

// Living reports whether the entity has health
func (e Entity) Living() bool {
	switch e.Category() {
	case CategoryAnimal, CategoryMonster, CategoryVillager, CategoryPlayer:
		return true
	}
	return false
}

// IsAnimal reports whether the entity is a passive animal
func (e Entity) IsAnimal() bool {
	return e.Category() == CategoryAnimal
}

// IsPlayer reports whether the entity is a player
func (e Entity) IsPlayer() bool {
	return e.Category() == CategoryPlayer
}

// IsProjectile reports whether the entity is a projectile
func (e Entity) IsProjectile() bool {
	return e.Category() == CategoryProjectile
}

// Material is a block or item type
type Material string

const (
	MaterialAir          Material = "air"
	MaterialFire         Material = "fire"
	MaterialDirt         Material = "dirt"
	MaterialGrassBlock   Material = "grass_block"
	MaterialTallGrass    Material = "tall_grass"
	MaterialStone        Material = "stone"
	MaterialDiamondOre   Material = "diamond_ore"
	MaterialObsidian     Material = "obsidian"
	MaterialBedrock      Material = "bedrock"
	MaterialGlass        Material = "glass"
	MaterialTNT          Material = "tnt"
	MaterialSlimeBlock   Material = "slime_block"
	MaterialHoneyBlock   Material = "honey_block"
	MaterialDiamondBlock Material = "diamond_block"
	MaterialGoldBlock    Material = "gold_block"
	MaterialEmeraldBlock Material = "emerald_block"
	MaterialMelon        Material = "melon"

	MaterialDiamond    Material = "diamond"
	MaterialEmerald    Material = "emerald"
	MaterialGoldIngot  Material = "gold_ingot"
	MaterialIronIngot  Material = "iron_ingot"
	MaterialApple      Material = "apple"
	MaterialBread      Material = "bread"
	MaterialCookedBeef Material = "cooked_beef"
)

// ItemStack is a quantity of one material
type ItemStack struct {
	Material Material `json:"material"`
	Amount   int      `json:"amount"`
}

// Item returns a stack of one
func Item(m Material) ItemStack {
	return ItemStack{Material: m, Amount: 1}
}

// StatusType names a timed status effect
type StatusType string

const (
	StatusSpeed        StatusType = "speed"
	StatusSlowness     StatusType = "slowness"
	StatusRegeneration StatusType = "regeneration"
	StatusInvisibility StatusType = "invisibility"
	StatusJumpBoost    StatusType = "jump_boost"
	StatusResistance   StatusType = "resistance"
	StatusLevitation   StatusType = "levitation"
	StatusBlindness    StatusType = "blindness"
	StatusSlowFalling  StatusType = "slow_falling"
	StatusNausea       StatusType = "nausea"
)

// Status is a status effect applied for a number of ticks
type Status struct {
	Type      StatusType `json:"type"`
	Ticks     int        `json:"ticks"`
	Amplifier int        `json:"amplifier"`
}

// Attribute names a scalable entity attribute
type Attribute string

const (
	AttrMovementSpeed       Attribute = "movement_speed"
	AttrMaxHealth           Attribute = "max_health"
	AttrAttackDamage        Attribute = "attack_damage"
	AttrKnockbackResistance Attribute = "knockback_resistance"
)

// Sound names a sound effect
type Sound string

const (
	SoundCowAmbient     Sound = "entity.cow.ambient"
	SoundChickenAmbient Sound = "entity.chicken.ambient"
	SoundPigAmbient     Sound = "entity.pig.ambient"
	SoundCatAmbient     Sound = "entity.cat.ambient"
	SoundParrotAmbient  Sound = "entity.parrot.ambient"
	SoundEndermanScream Sound = "entity.enderman.scream"
	SoundGhastScream    Sound = "entity.ghast.scream"
)

// Weather is the weather state of a world
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherStorm Weather = "storm"
)

// FireworkShape is the burst pattern of a firework
type FireworkShape string

const (
	FireworkBall      FireworkShape = "ball"
	FireworkBallLarge FireworkShape = "ball_large"
	FireworkStar      FireworkShape = "star"
	FireworkBurst     FireworkShape = "burst"
	FireworkCreeper   FireworkShape = "creeper"
)

// FireworkShapes lists every shape
var FireworkShapes = []FireworkShape{FireworkBall, FireworkBallLarge, FireworkStar, FireworkBurst, FireworkCreeper}

// Firework describes a firework rocket
type Firework struct {
	Power   int           `json:"power"`
	Color   uint32        `json:"color"`
	Fade    uint32        `json:"fade"`
	Shape   FireworkShape `json:"shape"`
	Flicker bool          `json:"flicker"`
	Trail   bool          `json:"trail"`
}
