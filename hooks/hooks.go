// Package hooks declares the one-way side effects the game core performs on
// its drawing and audio collaborators.
package hooks

import "github.com/milk9111/zuul/common"

// Renderer draws sprites by name. Unknown sprite names are the renderer's
// problem; the core never checks.
type Renderer interface {
	DrawStatic(sprite string, at common.Rect)
	DrawAnimationFrame(sprite string, frame int, at common.Rect)
}

// Audio plays music tracks and sound effects by name.
type Audio interface {
	PlayLoop(track string, volume float64)
	PlayOnce(sound string)
	StopAll()
}

// Nop implements Renderer and Audio and does nothing.
type Nop struct{}

func (Nop) DrawStatic(string, common.Rect)              {}
func (Nop) DrawAnimationFrame(string, int, common.Rect) {}
func (Nop) PlayLoop(string, float64)                    {}
func (Nop) PlayOnce(string)                             {}
func (Nop) StopAll()                                    {}
