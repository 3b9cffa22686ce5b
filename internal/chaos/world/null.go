package world

import (
	"fmt"
	"math"
	"sort"
	"sync"

	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCallLimit bounds the call log of a NullExecutor
const DefaultCallLimit = 200

const surfaceY = 64

// Call is one recorded Executor operation
type Call struct {
	Op     string
	Entity EntityID
	At     Location
	Detail string
}

// EntityState is the NullExecutor's view of an entity
type EntityState struct {
	Entity
	Name         string
	Marker       bool
	Velocity     Vector
	Invulnerable bool
	Health       float64
	Attributes   map[Attribute]float64
	Statuses     []Status
	FireTicks    int
	Inventory    []ItemStack
	Firework     *Firework

	seq uint64
}

// NullOption configures a NullExecutor
type NullOption func(*NullExecutor)

// WithWorlds sets the loaded world names. The first is the main world.
func WithWorlds(names ...string) NullOption {
	return func(n *NullExecutor) {
		n.worlds = append([]string(nil), names...)
	}
}

// WithCallLimit keeps at most limit calls in the log. 0 keeps every call.
func WithCallLimit(limit int) NullOption {
	return func(n *NullExecutor) {
		n.callLimit = limit
	}
}

// NullExecutor is an in-memory Executor that logs every operation and keeps
// just enough entity, block and time state for effects to read back.
type NullExecutor struct {
	logger *zap.Logger

	mu        sync.RWMutex
	worlds    []string
	entities  map[EntityID]*EntityState
	blocks    map[Location]Material
	times     map[string]int64
	weather   map[string]Weather
	drops     []ItemStack
	calls     []Call
	callLimit int
	failures  map[string]error
	seq       uint64
}

// NewNullExecutor creates an empty world named "world" unless WithWorlds is given
func NewNullExecutor(logger *zap.Logger, opts ...NullOption) *NullExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &NullExecutor{
		logger:    logger,
		worlds:    []string{"world"},
		entities:  make(map[EntityID]*EntityState),
		blocks:    make(map[Location]Material),
		times:     make(map[string]int64),
		weather:   make(map[string]Weather),
		failures:  make(map[string]error),
		callLimit: DefaultCallLimit,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Add places an existing entity into the world and returns its ID.
// An entity without an ID gets a fresh one.
func (n *NullExecutor) Add(e Entity) EntityID {
	n.mu.Lock()
	defer n.mu.Unlock()

	if e.ID == "" {
		e.ID = EntityID(uuid.NewString())
	}
	n.put(e)
	return e.ID
}

// Entity returns the current snapshot of an entity
func (n *NullExecutor) Entity(id EntityID) (Entity, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, ok := n.entities[id]
	if !ok {
		return Entity{}, false
	}
	return st.Entity, true
}

// Inspect returns a copy of the full entity state
func (n *NullExecutor) Inspect(id EntityID) (EntityState, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, ok := n.entities[id]
	if !ok {
		return EntityState{}, false
	}
	cp := *st
	cp.Attributes = make(map[Attribute]float64, len(st.Attributes))
	for k, v := range st.Attributes {
		cp.Attributes[k] = v
	}
	cp.Statuses = append([]Status(nil), st.Statuses...)
	cp.Inventory = append([]ItemStack(nil), st.Inventory...)
	return cp, true
}

// Count returns the number of entities of kind across all worlds
func (n *NullExecutor) Count(kind EntityKind) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := 0
	for _, st := range n.entities {
		if st.Kind == kind {
			c++
		}
	}
	return c
}

// Dropped returns every item dropped into the world
func (n *NullExecutor) Dropped() []ItemStack {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]ItemStack(nil), n.drops...)
}

// CurrentWeather returns the weather of a world
func (n *NullExecutor) CurrentWeather(world string) Weather {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if w, ok := n.weather[world]; ok {
		return w
	}
	return WeatherClear
}

// Calls returns the recorded operations, oldest first
func (n *NullExecutor) Calls() []Call {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]Call(nil), n.calls...)
}

// CallsTo returns the recorded operations named op
func (n *NullExecutor) CallsTo(op string) []Call {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []Call
	for _, c := range n.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log
func (n *NullExecutor) ResetCalls() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = nil
}

// FailOn makes every later call to op return err. A nil err clears it.
func (n *NullExecutor) FailOn(op string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err == nil {
		delete(n.failures, op)
		return
	}
	n.failures[op] = err
}

func (n *NullExecutor) begin(op string, id EntityID, at Location, detail string) error {
	n.calls = append(n.calls, Call{Op: op, Entity: id, At: at, Detail: detail})
	if n.callLimit > 0 && len(n.calls) > n.callLimit {
		n.calls = n.calls[len(n.calls)-n.callLimit:]
	}

	n.logger.Debug("null world operation",
		zap.String("op", op),
		zap.String("entity_id", string(id)),
		zap.String("world", at.World),
		zap.String("detail", detail))

	if err, ok := n.failures[op]; ok {
		return err
	}
	return nil
}

func (n *NullExecutor) put(e Entity) *EntityState {
	n.seq++
	st := &EntityState{
		Entity:     e,
		Attributes: defaultAttributes(e.Kind),
		seq:        n.seq,
	}
	st.Health = st.Attributes[AttrMaxHealth]
	n.entities[e.ID] = st
	return st
}

func (n *NullExecutor) lookup(id EntityID) (*EntityState, error) {
	st, ok := n.entities[id]
	if !ok {
		return nil, chaoserr.PreconditionSkip(fmt.Sprintf("entity %s not found", id))
	}
	return st, nil
}

func (n *NullExecutor) requireWorld(at Location) error {
	if !at.Valid() {
		return chaoserr.PreconditionSkip("location has no world")
	}
	for _, w := range n.worlds {
		if w == at.World {
			return nil
		}
	}
	return chaoserr.PreconditionSkip(fmt.Sprintf("world %s not loaded", at.World))
}

func defaultAttributes(kind EntityKind) map[Attribute]float64 {
	switch kind.Category() {
	case CategoryAnimal:
		return map[Attribute]float64{AttrMovementSpeed: 0.25, AttrMaxHealth: 10}
	case CategoryMonster:
		return map[Attribute]float64{
			AttrMovementSpeed:       0.23,
			AttrMaxHealth:           20,
			AttrAttackDamage:        3,
			AttrKnockbackResistance: 0.1,
		}
	case CategoryVillager:
		return map[Attribute]float64{AttrMovementSpeed: 0.5, AttrMaxHealth: 20}
	case CategoryPlayer:
		return map[Attribute]float64{AttrMovementSpeed: 0.1, AttrMaxHealth: 20, AttrAttackDamage: 1}
	default:
		return map[Attribute]float64{}
	}
}

// Spawn implements Executor
func (n *NullExecutor) Spawn(kind EntityKind, at Location) (EntityID, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("spawn", "", at, string(kind)); err != nil {
		return "", err
	}
	if err := n.requireWorld(at); err != nil {
		return "", err
	}
	st := n.put(Entity{ID: EntityID(uuid.NewString()), Kind: kind, Location: at})
	return st.ID, nil
}

// SpawnMarker implements Executor
func (n *NullExecutor) SpawnMarker(at Location, label string) (EntityID, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("spawn_marker", "", at, label); err != nil {
		return "", err
	}
	if err := n.requireWorld(at); err != nil {
		return "", err
	}
	st := n.put(Entity{ID: EntityID(uuid.NewString()), Kind: KindArmorStand, Location: at})
	st.Marker = true
	st.Name = label
	return st.ID, nil
}

// SetName implements Executor
func (n *NullExecutor) SetName(id EntityID, name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_name", id, Location{}, name); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.Name = name
	return nil
}

// Remove implements Executor
func (n *NullExecutor) Remove(id EntityID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("remove", id, Location{}, ""); err != nil {
		return err
	}
	if _, err := n.lookup(id); err != nil {
		return err
	}
	delete(n.entities, id)
	return nil
}

// Velocity implements Executor
func (n *NullExecutor) Velocity(id EntityID) (Vector, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	st, err := n.lookup(id)
	if err != nil {
		return Vector{}, err
	}
	return st.Velocity, nil
}

// SetVelocity implements Executor
func (n *NullExecutor) SetVelocity(id EntityID, v Vector) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_velocity", id, Location{}, fmt.Sprintf("%.2f,%.2f,%.2f", v.X, v.Y, v.Z)); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.Velocity = v
	return nil
}

// Teleport implements Executor
func (n *NullExecutor) Teleport(id EntityID, to Location) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("teleport", id, to, ""); err != nil {
		return err
	}
	if err := n.requireWorld(to); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.Location = to
	return nil
}

// SetInvulnerable implements Executor
func (n *NullExecutor) SetInvulnerable(id EntityID, invulnerable bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_invulnerable", id, Location{}, fmt.Sprint(invulnerable)); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.Invulnerable = invulnerable
	return nil
}

// ScaleAttribute implements Executor
func (n *NullExecutor) ScaleAttribute(id EntityID, attr Attribute, factor float64) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("scale_attribute", id, Location{}, fmt.Sprintf("%s x%.2f", attr, factor)); err != nil {
		return false, err
	}
	st, err := n.lookup(id)
	if err != nil {
		return false, err
	}
	base, ok := st.Attributes[attr]
	if !ok {
		return false, nil
	}
	st.Attributes[attr] = base * factor
	if attr == AttrMaxHealth && st.Health > st.Attributes[attr] {
		st.Health = st.Attributes[attr]
	}
	return true, nil
}

// Heal implements Executor
func (n *NullExecutor) Heal(id EntityID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("heal", id, Location{}, ""); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	if maxHealth, ok := st.Attributes[AttrMaxHealth]; ok {
		st.Health = maxHealth
	}
	return nil
}

// ApplyStatus implements Executor
func (n *NullExecutor) ApplyStatus(id EntityID, status Status) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("apply_status", id, Location{}, string(status.Type)); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.Statuses = append(st.Statuses, status)
	return nil
}

// Ignite implements Executor
func (n *NullExecutor) Ignite(id EntityID, ticks int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("ignite", id, Location{}, fmt.Sprint(ticks)); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	st.FireTicks = ticks
	return nil
}

// GiveItem implements Executor
func (n *NullExecutor) GiveItem(player EntityID, item ItemStack) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("give_item", player, Location{}, string(item.Material)); err != nil {
		return err
	}
	st, err := n.lookup(player)
	if err != nil {
		return err
	}
	st.Inventory = append(st.Inventory, item)
	return nil
}

// Nearby implements Executor
func (n *NullExecutor) Nearby(at Location, radius float64) ([]Entity, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireWorld(at); err != nil {
		return nil, err
	}
	return n.collect(func(st *EntityState) bool {
		l := st.Location
		return l.World == at.World &&
			math.Abs(l.X-at.X) <= radius &&
			math.Abs(l.Y-at.Y) <= radius &&
			math.Abs(l.Z-at.Z) <= radius
	}), nil
}

// Entities implements Executor
func (n *NullExecutor) Entities(world string) ([]Entity, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireWorld(Location{World: world}); err != nil {
		return nil, err
	}
	return n.collect(func(st *EntityState) bool {
		return st.Location.World == world
	}), nil
}

// Players implements Executor
func (n *NullExecutor) Players() ([]Entity, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.collect(func(st *EntityState) bool {
		return st.IsPlayer()
	}), nil
}

// collect returns matching entities in spawn order
func (n *NullExecutor) collect(match func(*EntityState) bool) []Entity {
	states := make([]*EntityState, 0)
	for _, st := range n.entities {
		if match(st) {
			states = append(states, st)
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i].seq < states[j].seq })

	out := make([]Entity, 0, len(states))
	for _, st := range states {
		out = append(out, st.Entity)
	}
	return out
}

// Worlds implements Executor
func (n *NullExecutor) Worlds() ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]string(nil), n.worlds...), nil
}

// SpawnLocation implements Executor
func (n *NullExecutor) SpawnLocation(world string) (Location, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	at := Location{World: world, Y: surfaceY + 1}
	if err := n.requireWorld(at); err != nil {
		return Location{}, err
	}
	return at, nil
}

// HighestBlockY implements Executor
func (n *NullExecutor) HighestBlockY(at Location) (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireWorld(at); err != nil {
		return 0, err
	}
	highest := float64(surfaceY)
	col := at.Block()
	for loc, m := range n.blocks {
		if loc.World == col.World && loc.X == col.X && loc.Z == col.Z && m != MaterialAir && loc.Y > highest {
			highest = loc.Y
		}
	}
	return highest, nil
}

// BlockAt implements Executor. Unset blocks are stone at or below the
// surface and air above it.
func (n *NullExecutor) BlockAt(at Location) (Material, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireWorld(at); err != nil {
		return "", err
	}
	return n.blockAt(at.Block()), nil
}

func (n *NullExecutor) blockAt(block Location) Material {
	if m, ok := n.blocks[block]; ok {
		return m
	}
	if block.Y <= surfaceY {
		return MaterialStone
	}
	return MaterialAir
}

// SetBlock implements Executor
func (n *NullExecutor) SetBlock(at Location, m Material) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_block", "", at, string(m)); err != nil {
		return err
	}
	if err := n.requireWorld(at); err != nil {
		return err
	}
	n.blocks[at.Block()] = m
	return nil
}

// DropItem implements Executor
func (n *NullExecutor) DropItem(at Location, item ItemStack) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("drop_item", "", at, string(item.Material)); err != nil {
		return err
	}
	if err := n.requireWorld(at); err != nil {
		return err
	}
	n.drops = append(n.drops, item)
	return nil
}

// Explode implements Executor
func (n *NullExecutor) Explode(at Location, power float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("explode", "", at, fmt.Sprintf("%.1f", power)); err != nil {
		return err
	}
	return n.requireWorld(at)
}

// StrikeLightning implements Executor
func (n *NullExecutor) StrikeLightning(at Location) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("strike_lightning", "", at, ""); err != nil {
		return err
	}
	return n.requireWorld(at)
}

// PlaySound implements Executor
func (n *NullExecutor) PlaySound(at Location, sound Sound, volume, pitch float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("play_sound", "", at, fmt.Sprintf("%s v%.1f p%.2f", sound, volume, pitch)); err != nil {
		return err
	}
	return n.requireWorld(at)
}

// Time implements Executor
func (n *NullExecutor) Time(world string) (int64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.requireWorld(Location{World: world}); err != nil {
		return 0, err
	}
	return n.times[world], nil
}

// SetTime implements Executor
func (n *NullExecutor) SetTime(world string, t int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_time", "", Location{World: world}, fmt.Sprint(t)); err != nil {
		return err
	}
	if err := n.requireWorld(Location{World: world}); err != nil {
		return err
	}
	n.times[world] = t
	return nil
}

// SetWeather implements Executor
func (n *NullExecutor) SetWeather(world string, w Weather) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("set_weather", "", Location{World: world}, string(w)); err != nil {
		return err
	}
	if err := n.requireWorld(Location{World: world}); err != nil {
		return err
	}
	n.weather[world] = w
	return nil
}

// LaunchFirework implements Executor
func (n *NullExecutor) LaunchFirework(at Location, fw Firework) (EntityID, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("launch_firework", "", at, fmt.Sprintf("power %d %s", fw.Power, fw.Shape)); err != nil {
		return "", err
	}
	if err := n.requireWorld(at); err != nil {
		return "", err
	}
	st := n.put(Entity{ID: EntityID(uuid.NewString()), Kind: KindFirework, Location: at})
	st.Firework = &fw
	return st.ID, nil
}

// Detonate implements Executor
func (n *NullExecutor) Detonate(id EntityID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.begin("detonate", id, Location{}, ""); err != nil {
		return err
	}
	st, err := n.lookup(id)
	if err != nil {
		return err
	}
	if st.Firework == nil {
		return chaoserr.InvalidArgumentf("entity %s is not a firework", id)
	}
	delete(n.entities, id)
	return nil
}

var _ Executor = (*NullExecutor)(nil)
