package obj

import (
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
)

const (
	DefaultPlayerSize  = 64
	DefaultPlayerSpeed = 5

	walkFrames        = 4
	walkTicksPerFrame = 2
)

// Player is the controllable character of one scene. Bounds is the
// playfield the player may not leave.
type Player struct {
	X, Y   int
	Facing common.Direction
	Speed  int
	Size   int
	Bounds common.Rect

	// Walk cycles while the player moves and rests on frame 0 otherwise.
	Walk *component.Animation
}

// NewPlayer creates a player facing up.
func NewPlayer(x, y, size, speed int, bounds common.Rect) *Player {
	if size <= 0 {
		size = DefaultPlayerSize
	}
	if speed <= 0 {
		speed = DefaultPlayerSpeed
	}
	return &Player{
		X:      x,
		Y:      y,
		Facing: common.Up,
		Speed:  speed,
		Size:   size,
		Bounds: bounds,
		Walk:   component.NewAnimation(walkFrames, walkTicksPerFrame, true, false),
	}
}

// Rect is the player's collision box.
func (p *Player) Rect() common.Rect {
	return common.NewRect(p.X, p.Y, p.Size, p.Size)
}

// SetPosition moves the player without touching its facing.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

func (p *Player) CanMoveUp(limit int) bool {
	return p.Y-p.Speed > limit
}

func (p *Player) CanMoveDown(limit int) bool {
	return p.Y+p.Size+p.Speed < limit
}

func (p *Player) CanMoveLeft(limit int) bool {
	return p.X-p.Speed > limit
}

func (p *Player) CanMoveRight(limit int) bool {
	return p.X+p.Size+p.Speed < limit
}

// MoveUp faces up and steps one speed unit when the top edge allows it.
func (p *Player) MoveUp() bool {
	if !p.CanMoveUp(p.Bounds.Y) {
		return false
	}
	p.Facing = common.Up
	p.Y -= p.Speed
	return true
}

func (p *Player) MoveDown() bool {
	if !p.CanMoveDown(p.Bounds.Bottom()) {
		return false
	}
	p.Facing = common.Down
	p.Y += p.Speed
	return true
}

func (p *Player) MoveLeft() bool {
	if !p.CanMoveLeft(p.Bounds.X) {
		return false
	}
	p.Facing = common.Left
	p.X -= p.Speed
	return true
}

func (p *Player) MoveRight() bool {
	if !p.CanMoveRight(p.Bounds.Right()) {
		return false
	}
	p.Facing = common.Right
	p.X += p.Speed
	return true
}

// PushOut nudges the player step units against its facing. It is applied
// once per tick while the player overlaps a collision box, instead of
// resolving the overlap.
func (p *Player) PushOut(step int) {
	dx, dy := p.Facing.Opposite().Delta()
	p.X += dx * step
	p.Y += dy * step
}

// IsCollidingWith reports whether any entity's collision box overlaps the
// player.
func (p *Player) IsCollidingWith(reg *Registry) bool {
	box := p.Rect()
	colliding := false
	reg.Each(func(e *Entity) bool {
		if e.Collision.IsColliding(box) {
			colliding = true
			return false
		}
		return true
	})
	return colliding
}

// CurrentTrigger returns the first trigger, in registry order, that the
// player overlaps.
func (p *Player) CurrentTrigger(reg *Registry) *component.TriggerBox {
	box := p.Rect()
	var found *component.TriggerBox
	reg.Each(func(e *Entity) bool {
		if e.Trigger.IsTriggering(box) {
			found = e.Trigger
			return false
		}
		return true
	})
	return found
}

// CurrentItemTrigger returns the pickup trigger of the first item the player
// overlaps.
func (p *Player) CurrentItemTrigger(items *Items) *component.TriggerBox {
	box := p.Rect()
	var found *component.TriggerBox
	items.Each(func(it *component.Item) bool {
		if it.Trigger.IsTriggering(box) {
			found = it.Trigger
			return false
		}
		return true
	})
	return found
}

// Sprite is the sprite name for the current facing.
func (p *Player) Sprite() string {
	switch p.Facing {
	case common.Right:
		return "player_right"
	case common.Down:
		return "player_down"
	case common.Left:
		return "player_left"
	}
	return "player_up"
}
