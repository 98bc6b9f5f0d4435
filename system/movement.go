package system

import (
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/obj"
)

// pushOutStep is how far a colliding player is nudged back per tick.
const pushOutStep = 1

// MovementSystem turns one tick of input into player movement. A player that
// overlaps a collision box ignores input and is nudged back against its
// facing until it is free again.
type MovementSystem struct {
	audio    hooks.Audio
	footstep string
	walking  bool
}

func NewMovementSystem(audio hooks.Audio, footstep string) *MovementSystem {
	if audio == nil {
		audio = hooks.Nop{}
	}
	return &MovementSystem{audio: audio, footstep: footstep}
}

// Update applies in to p and reports whether the player started walking on
// this tick. Only the first pressed direction counts, in the order left,
// right, up, down; a blocked direction still counts as walking.
func (m *MovementSystem) Update(p *obj.Player, reg *obj.Registry, in component.Input) bool {
	defer p.Walk.Update()

	if p.IsCollidingWith(reg) {
		p.PushOut(pushOutStep)
		return false
	}

	switch {
	case in.Left:
		p.MoveLeft()
	case in.Right:
		p.MoveRight()
	case in.Up:
		p.MoveUp()
	case in.Down:
		p.MoveDown()
	default:
		m.walking = false
		p.Walk.Stop()
		p.Walk.Reset()
		return false
	}

	p.Walk.Play()
	if m.walking {
		return false
	}
	m.walking = true
	if m.footstep != "" {
		m.audio.PlayOnce(m.footstep)
	}
	return true
}

// Halt forgets the walking state, so the next step plays the footstep
// again. It is called when the player changes scenes.
func (m *MovementSystem) Halt(p *obj.Player) {
	m.walking = false
	if p != nil {
		p.Walk.Stop()
		p.Walk.Reset()
	}
}
