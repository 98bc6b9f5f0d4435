package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/zuul/assets"
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/game"
)

const (
	cellW = 12
	cellH = 24
)

// cellRenderer draws sprites as blocks of palette-colored glyphs.
type cellRenderer struct {
	screen  tcell.Screen
	palette assets.Palette
}

func newCellRenderer(screen tcell.Screen, palette assets.Palette) *cellRenderer {
	return &cellRenderer{screen: screen, palette: palette}
}

func (r *cellRenderer) DrawStatic(sprite string, at common.Rect) {
	r.block(sprite, at, 0)
}

func (r *cellRenderer) DrawAnimationFrame(sprite string, frame int, at common.Rect) {
	r.block(sprite, at, frame)
}

func (r *cellRenderer) block(sprite string, at common.Rect, frame int) {
	sw := r.palette.Lookup(sprite)
	glyph := []rune(sw.Glyph)
	ch := ' '
	if len(glyph) > 0 {
		ch = glyph[0]
	}
	c := toTcell(sw.Color)
	style := tcell.StyleDefault.Foreground(c)
	if ch == ' ' {
		style = style.Background(c)
	}
	if frame%2 == 1 {
		style = style.Bold(true)
	}

	w, h := r.screen.Size()
	x0, y0 := at.X/cellW, at.Y/cellH
	x1, y1 := (at.Right()-1)/cellW, (at.Bottom()-1)/cellH
	for y := common.Clamp(y0, 0, h-1); y <= common.Clamp(y1, 0, h-1); y++ {
		for x := common.Clamp(x0, 0, w-1); x <= common.Clamp(x1, 0, w-1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// frame draws the whole screen for the controller's current state.
func (r *cellRenderer) frame(ctrl *game.Controller) {
	r.screen.Clear()
	ctrl.Render(r)

	playfield := ctrl.CurrentScene().Playfield
	row := playfield.Bottom() / cellH
	width, _ := r.screen.Size()

	inv := ctrl.Inventory()
	var slots strings.Builder
	for i := 0; i < 4; i++ {
		mark := ' '
		if i == inv.SelectedSlot() {
			mark = '>'
		}
		name := "-"
		if it, ok := inv.Item(i); ok {
			name = it.Name
		}
		fmt.Fprintf(&slots, "%c%d:%s ", mark, i+1, runewidth.Truncate(name, 14, "…"))
	}
	r.line(0, row, slots.String(), width, tcell.StyleDefault.Foreground(tcell.ColorSilver))

	msg, _ := ctrl.CurrentTriggerMessage()
	switch ctrl.Phase() {
	case game.PhaseIntro:
		msg = "Press Enter to start. Arrows move, 1-4 select, q drops, Esc quits."
	case game.PhaseEnded:
		msg += " (Esc to quit)"
	}
	r.line(0, row+1, msg, width, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	r.screen.Show()
}

// line writes s at column x, row y, truncated or padded to width display
// columns.
func (r *cellRenderer) line(x, y int, s string, width int, style tcell.Style) {
	s = runewidth.FillRight(runewidth.Truncate(s, width-x, "…"), width-x)
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

func toTcell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}
