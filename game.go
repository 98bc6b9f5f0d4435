package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/zuul/assets"
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/config"
	"github.com/milk9111/zuul/game"
	"github.com/milk9111/zuul/logger"
	"github.com/milk9111/zuul/prefabs"
)

const levelsDir = "levels"

type Game struct {
	frames int
	ticks  int

	tps     int
	divider int
	debug   bool

	ctrl     *game.Controller
	loader   *game.Loader
	renderer *screenRenderer
	speaker  *speaker
	keys     keyboard
	watcher  *prefabs.Watcher
	log      *slog.Logger

	hud     common.Rect
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg *config.Config, log *slog.Logger) (*Game, error) {
	loader, err := game.NewLoader(cfg.Seed)
	if err != nil {
		return nil, err
	}
	palette, err := assets.LoadPalette()
	if err != nil {
		return nil, err
	}

	spk := newSpeaker(palette, log)
	ctrl, err := game.NewSession(loader, cfg.StartScene, cfg.SkipIntro, spk, log)
	if err != nil {
		return nil, err
	}

	screen := loader.Game.Screen
	g := &Game{
		tps:      screen.TPS,
		divider:  screen.LogicDivider,
		debug:    cfg.Debug,
		ctrl:     ctrl,
		loader:   loader,
		renderer: newScreenRenderer(palette),
		speaker:  spk,
		log:      log,
		hud:      common.NewRect(0, screen.Height, screen.Width, screen.HUDHeight),
	}
	if g.tps <= 0 {
		g.tps = ebiten.DefaultTPS
	}
	if g.divider <= 0 {
		g.divider = 1
	}

	if cfg.Debug {
		if _, err := os.Stat(levelsDir); err == nil {
			w, err := prefabs.NewWatcher(levelsDir)
			if err != nil {
				logger.WithError(log, err).Warn("scene hot reload disabled")
			} else {
				g.watcher = w
				log.Info("watching scene files", "dir", levelsDir)
			}
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadScenes()
	g.speaker.Update()
	g.keys.Sample()

	if g.frames%g.divider != 0 {
		return nil
	}
	g.ticks++
	g.ctrl.Update(g.keys.Take())
	return nil
}

// reloadScenes swaps in scene files edited on disk.
func (g *Game) reloadScenes() {
	if g.watcher == nil {
		return
	}
	for _, path := range g.watcher.Poll() {
		name := prefabs.BaseName(path)
		sc, err := g.loader.Scene(name)
		if err == nil {
			game.WarnUnreachable(g.log, sc)
			err = g.ctrl.ReloadScene(sc)
		}
		if err != nil {
			if errors.Is(err, game.ErrUnknownScene) {
				g.log.Warn("new scene files need a restart", "scene", name)
				continue
			}
			logger.WithScene(logger.WithError(g.log, err), name).Warn("scene reload failed")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.screen = screen

	g.ctrl.Render(r)

	playfield := g.ctrl.CurrentScene().Playfield
	switch g.ctrl.Phase() {
	case game.PhaseIntro:
		r.drawTitle(playfield, "Press Enter to start", g.frames)
	case game.PhaseEnded:
		msg, _ := g.ctrl.CurrentTriggerMessage()
		r.drawTitle(playfield, msg, g.ticks)
	}

	msg, _ := g.ctrl.CurrentTriggerMessage()
	r.drawHUD(g.hud, g.ctrl.Inventory(), msg)

	if g.debug {
		if g.ctrl.Phase() == game.PhasePlaying {
			r.drawBoxes(g.ctrl.CurrentScene())
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  scene: %s  phase: %s", ebiten.ActualFPS(), g.ctrl.CurrentScene().Name, g.ctrl.Phase()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
