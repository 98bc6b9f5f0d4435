package obj

import (
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
)

// Entity is anything placed in a scene. Collision, Trigger and Animation are
// optional and may be combined freely.
type Entity struct {
	Name   string
	Sprite string
	Bounds common.Rect

	Collision *component.CollisionBox
	Trigger   *component.TriggerBox
	Animation *component.Animation
}

// NewEntity creates a bare entity that is drawn but neither blocks nor
// triggers.
func NewEntity(name, sprite string, bounds common.Rect) *Entity {
	return &Entity{Name: name, Sprite: sprite, Bounds: bounds}
}

// WithCollision gives the entity a collision box matching its bounds.
func (e *Entity) WithCollision() *Entity {
	e.Collision = &component.CollisionBox{Box: e.Bounds}
	return e
}

// WithTrigger attaches a trigger around the entity's bounds. The owner is
// always the entity name.
func (e *Entity) WithTrigger(opts component.TriggerOpts) *Entity {
	opts.Owner = e.Name
	e.Trigger = component.NewTriggerBox(opts, e.Bounds)
	return e
}

func (e *Entity) WithAnimation(a *component.Animation) *Entity {
	e.Animation = a
	return e
}

// MoveTo repositions the entity and every box it owns.
func (e *Entity) MoveTo(x, y int) {
	e.Bounds = e.Bounds.MoveTo(x, y)
	e.Collision.MoveTo(x, y)
	e.Trigger.MoveTo(x, y)
}

func (e *Entity) Animated() bool {
	return e != nil && e.Animation != nil
}
