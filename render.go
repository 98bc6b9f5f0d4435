package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/zuul/assets"
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/obj"
	"github.com/milk9111/zuul/scene"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	slotSize = 44
	slotGap  = 10
)

// screenRenderer draws sprites by name onto the current frame. Sprites with
// an embedded image are drawn from it; the rest are filled with their
// palette color.
type screenRenderer struct {
	screen  *ebiten.Image
	palette assets.Palette
	images  map[string]*ebiten.Image
	pixel   *ebiten.Image
	face    ebtext.Face
}

func newScreenRenderer(palette assets.Palette) *screenRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &screenRenderer{
		palette: palette,
		images:  make(map[string]*ebiten.Image),
		pixel:   pixel,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *screenRenderer) DrawStatic(sprite string, at common.Rect) {
	if img := r.image(sprite); img != nil {
		r.drawImage(img, at)
		return
	}
	r.fill(at, r.palette.Lookup(sprite).Color, 1)
}

// DrawAnimationFrame treats an image as a horizontal strip of frames as wide
// as the target rect. Without an image the swatch pulses with the frame.
func (r *screenRenderer) DrawAnimationFrame(sprite string, frame int, at common.Rect) {
	if img := r.image(sprite); img != nil {
		b := img.Bounds()
		sub := img.SubImage(image.Rect(frame*at.W, 0, (frame+1)*at.W, b.Dy())).(*ebiten.Image)
		r.drawImage(sub, at)
		return
	}
	shade := common.Lerp(1, 0.8, float32(frame%4)/4)
	r.fill(at, r.palette.Lookup(sprite).Color, shade)
}

func (r *screenRenderer) image(sprite string) *ebiten.Image {
	if img, ok := r.images[sprite]; ok {
		return img
	}
	var img *ebiten.Image
	if file := r.palette.Lookup(sprite).Image; file != "" && assets.Exists(file) {
		img, _ = assets.LoadImage(file)
	}
	r.images[sprite] = img
	return img
}

func (r *screenRenderer) drawImage(img *ebiten.Image, at common.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(at.W)/float64(b.Dx()), float64(at.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	r.screen.DrawImage(img, op)
}

func (r *screenRenderer) fill(at common.Rect, c color.Color, shade float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(at.W), float64(at.H))
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.Scale(shade, shade, shade, 1)
	r.screen.DrawImage(r.pixel, op)
}

func (r *screenRenderer) text(msg string, x, y int, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(r.screen, msg, r.face, op)
}

// drawHUD draws the inventory bar below the playfield.
func (r *screenRenderer) drawHUD(bar common.Rect, inv *component.Inventory, message string) {
	r.fill(bar, colornames.Black, 1)

	y := bar.Y + (bar.H-slotSize)/2
	for i := 0; i < component.MaxItems; i++ {
		slot := common.NewRect(bar.X+slotGap+i*(slotSize+slotGap), y, slotSize, slotSize)
		if i == inv.SelectedSlot() {
			r.fill(slot.Expand(2), colornames.Gold, 1)
		}
		r.fill(slot, colornames.Dimgray, 1)
		if it, ok := inv.Item(i); ok {
			r.DrawStatic(it.Icon, slot.Expand(-6))
		}
	}

	textX := bar.X + slotGap + component.MaxItems*(slotSize+slotGap) + slotGap
	r.text(message, textX, bar.Y+bar.H/2-6, colornames.White)
}

// drawTitle shows a centered line over the playfield, fading in over the
// first ticks.
func (r *screenRenderer) drawTitle(playfield common.Rect, msg string, ticks int) {
	alpha := common.Lerp(0, 1, float32(common.Clamp(ticks, 0, 60))/60)
	w, _ := ebtext.Measure(msg, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(playfield.X)+(float64(playfield.W)-w)/2, float64(playfield.Y+playfield.H/2))
	op.ColorScale.ScaleWithColor(colornames.White)
	op.ColorScale.ScaleAlpha(alpha)
	ebtext.Draw(r.screen, msg, r.face, op)
}

// drawBoxes outlines collision boxes in red and triggers in yellow. A
// trigger waiting for the player to step off it is drawn in cyan.
func (r *screenRenderer) drawBoxes(sc *scene.Scene) {
	cooldown := sc.Cooldown()
	sc.Entities.Each(func(e *obj.Entity) bool {
		if e.Collision != nil {
			r.stroke(e.Collision.Box, colornames.Red)
		}
		if t := e.Trigger; t != nil {
			c := colornames.Yellow
			if t == cooldown {
				c = colornames.Cyan
			}
			r.stroke(t.Box, c)
		}
		return true
	})
	sc.Items.Each(func(it *component.Item) bool {
		r.stroke(it.Trigger.Box, colornames.Yellow)
		return true
	})
}

func (r *screenRenderer) stroke(b common.Rect, c color.Color) {
	vector.StrokeRect(r.screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
}
