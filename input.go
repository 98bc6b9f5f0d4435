package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/zuul/component"
)

var slotKeys = [component.MaxItems]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// keyboard collects key presses between logic ticks. Directions are read
// when the tick runs; one-off presses are remembered until then.
type keyboard struct {
	edges component.Input
}

// Sample runs every frame.
func (k *keyboard) Sample() {
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			k.edges.Slot = i + 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		k.edges.Drop = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k.edges.Start = true
	}
}

// Take returns the input for one logic tick and clears remembered presses.
func (k *keyboard) Take() component.Input {
	in := k.edges
	k.edges = component.Input{}
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	in.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	return in
}
