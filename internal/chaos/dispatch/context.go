package dispatch

import (
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/scheduler"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/tags"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	chaoserr "github.com/chaoscraft/chaos-engine-go/internal/errors"
	"go.uber.org/zap"
)

// Context is what an effect procedure sees. Effects for one event share the
// same Context, so parameter rewrites on Event are visible to later effects.
type Context struct {
	Event  *event.Event
	World  world.Executor
	Tags   *tags.Store[world.EntityID]
	Tasks  *scheduler.Scheduler
	Rand   rng.Source
	Logger *zap.Logger

	// Modifier is the id of the modifier currently being applied
	Modifier string
}

// Subject returns the entity the event is about
func (c *Context) Subject() world.Entity {
	return c.Event.Subject
}

// RequireSubject skips the effect when the event has no live subject
func (c *Context) RequireSubject() error {
	if c.Event.Subject.ID == "" {
		return chaoserr.PreconditionSkip("event has no subject")
	}
	if c.Event.SubjectGone {
		return chaoserr.PreconditionSkip("subject already removed")
	}
	return nil
}

// RequireWorld skips the effect when loc is not in a world
func (c *Context) RequireWorld(loc world.Location) error {
	if !loc.Valid() {
		return chaoserr.PreconditionSkip("location has no world")
	}
	return nil
}

// Tagged reports whether the subject carries key
func (c *Context) Tagged(key tags.Key) bool {
	return c.Tags.Has(c.Event.Subject.ID, key)
}

// Consume reads and removes a tag from the subject
func (c *Context) Consume(key tags.Key) (tags.Value, error) {
	v, err := c.Tags.Consume(c.Event.Subject.ID, key)
	if err != nil {
		return tags.Value{}, err
	}
	c.Logger.Debug("consumed tag",
		zap.String("entity_id", string(c.Event.Subject.ID)),
		zap.String("tag", string(key)),
		zap.String("value", v.String()))
	return v, nil
}

// Tag sets key on the subject
func (c *Context) Tag(key tags.Key, value tags.Value) error {
	if err := c.RequireSubject(); err != nil {
		return err
	}
	return c.Tags.Set(c.Event.Subject.ID, key, value)
}

// RemoveSubject despawns an entity and drops every tag it carries.
// Tags are dropped only once the entity is gone: after a successful removal
// or when the world reports it already missing. Any other failure leaves the
// entity and its tags untouched.
// Removing the event's own subject marks the event so later effects skip it;
// a second removal of the subject is a no-op.
func (c *Context) RemoveSubject(id world.EntityID) error {
	isSubject := id == c.Event.Subject.ID
	if isSubject && c.Event.SubjectGone {
		return nil
	}

	err := c.World.Remove(id)
	if err != nil && !chaoserr.IsPreconditionSkip(err) {
		return err
	}
	c.Tags.RemoveAll(id)
	if isSubject {
		c.Event.SubjectGone = true
	}
	return err
}
