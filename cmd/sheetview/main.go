// Command sheetview previews the animation of one scene entity, looping, so
// frame counts and timings can be checked without playing to it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/zuul/assets"
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/levels"
)

const viewSize = 512

type viewer struct {
	name   string
	sprite string
	size   image.Point
	anim   *component.Animation
	frames []*ebiten.Image
	swatch color.Color
	pixel  *ebiten.Image
}

func (v *viewer) Update() error {
	v.anim.Update()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	sx := float64(viewSize-v.size.X) / 2
	sy := float64(viewSize-v.size.Y) / 2
	frame := v.anim.Frame()

	if len(v.frames) > 0 {
		img := v.frames[frame%len(v.frames)]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(v.size.X)/float64(img.Bounds().Dx()), float64(v.size.Y)/float64(img.Bounds().Dy()))
		op.GeoM.Translate(sx, sy)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	} else {
		shade := common.Lerp(1, 0.8, float32(frame%4)/4)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(v.size.X), float64(v.size.Y))
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(v.swatch)
		op.ColorScale.Scale(shade, shade, shade, 1)
		screen.DrawImage(v.pixel, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%s)\nframe %d/%d, %d ticks per frame",
		v.name, v.sprite, frame+1, v.anim.FrameCount, v.anim.TicksPerFrame))
}

func (v *viewer) Layout(int, int) (int, int) {
	return viewSize, viewSize
}

// sliceStrip cuts a horizontal strip into count frames of equal width.
func sliceStrip(sheet *ebiten.Image, count int) []*ebiten.Image {
	b := sheet.Bounds()
	w := b.Dx() / count
	if w == 0 {
		return nil
	}
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		frames[i] = sheet.SubImage(image.Rect(i*w, 0, (i+1)*w, b.Dy())).(*ebiten.Image)
	}
	return frames
}

func findAnimated(sc *levels.Scene, name string) (levels.Entity, bool) {
	for _, e := range sc.Entities {
		if e.Animation == nil {
			continue
		}
		if name == "" || e.Name == name {
			return e, true
		}
	}
	return levels.Entity{}, false
}

func main() {
	sceneName := flag.String("scene", "headquarters", "scene file to read")
	entityName := flag.String("entity", "", "animated entity to preview (default: the first one)")
	flag.Parse()

	sc, err := levels.LoadScene(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	e, ok := findAnimated(sc, *entityName)
	if !ok {
		log.Fatalf("scene %s has no animated entity %q", sc.Name, *entityName)
	}
	palette, err := assets.LoadPalette()
	if err != nil {
		log.Fatal(err)
	}

	a := e.Animation
	swatch := palette.Lookup(e.Sprite)
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	v := &viewer{
		name:   e.Name,
		sprite: e.Sprite,
		size:   image.Pt(e.W, e.H),
		anim:   component.NewAnimation(a.Frames, a.TicksPerFrame, true, true),
		swatch: swatch.Color,
		pixel:  pixel,
	}
	if swatch.Image != "" && assets.Exists(swatch.Image) {
		sheet, err := assets.LoadImage(swatch.Image)
		if err != nil {
			log.Fatal(err)
		}
		v.frames = sliceStrip(sheet, v.anim.FrameCount)
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("zuul sheetview: " + e.Name)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
