// Command zuulterm plays the game in a terminal. Every cell stands for a
// 12x24 pixel block of the playfield.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/zuul/assets"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/config"
	"github.com/milk9111/zuul/game"
	"github.com/milk9111/zuul/logger"
)

const tickInterval = 50 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse("zuulterm", os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "zuulterm.log"
	}
	out, closeLog, err := logger.Open(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()
	log := logger.Setup(cfg, out)

	palette, err := assets.LoadPalette()
	if err != nil {
		return err
	}
	loader, err := game.NewLoader(cfg.Seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	audio := &bell{screen: screen, footstep: loader.Game.Sounds.Footstep}
	ctrl, err := game.NewSession(loader, cfg.StartScene, cfg.SkipIntro, audio, log)
	if err != nil {
		return err
	}

	r := newCellRenderer(screen, palette)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var in component.Input
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := readKey(ev, &in); quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			ctrl.Update(in)
			in = component.Input{}
			r.frame(ctrl)
		}
	}
}

// readKey folds one key event into the input of the next tick. Terminals do
// not report key releases, so a direction lasts for a single tick.
func readKey(ev *tcell.EventKey, in *component.Input) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		in.Left = true
	case tcell.KeyRight:
		in.Right = true
	case tcell.KeyUp:
		in.Up = true
	case tcell.KeyDown:
		in.Down = true
	case tcell.KeyEnter:
		in.Start = true
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r >= '1' && r <= '4':
			in.Slot = int(r-'1') + 1
		case r == 'q':
			in.Drop = true
		case r == ' ':
			in.Start = true
		case r == 'a':
			in.Left = true
		case r == 'd':
			in.Right = true
		case r == 'w':
			in.Up = true
		case r == 's':
			in.Down = true
		}
	}
	return false
}

// bell rings the terminal bell for every sound but footsteps.
type bell struct {
	screen   tcell.Screen
	footstep string
}

func (b *bell) PlayLoop(string, float64) {}
func (b *bell) StopAll()                 {}

func (b *bell) PlayOnce(sound string) {
	if sound != b.footstep {
		_ = b.screen.Beep()
	}
}
