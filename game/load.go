package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/levels"
	"github.com/milk9111/zuul/prefabs"
	"github.com/milk9111/zuul/scene"
	"github.com/milk9111/zuul/system"
)

// Loader builds scenes and controller options from the prefabs and the
// scene catalog.
type Loader struct {
	Game   *prefabs.GameSpec
	Player *prefabs.PlayerSpec
	Seed   int64

	build scene.BuildOptions
}

func NewLoader(seed int64) (*Loader, error) {
	gs, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	return &Loader{
		Game:   gs,
		Player: ps,
		Seed:   seed,
		build: scene.BuildOptions{
			Playfield:         common.NewRect(0, 0, gs.Screen.Width, gs.Screen.Height),
			PlayerSize:        ps.Size,
			PlayerSpeed:       ps.Speed,
			LegacyAnchorAlias: gs.LegacyAnchorAlias,
			Rand:              rand.New(rand.NewSource(seed)),
		},
	}, nil
}

func (l *Loader) Playfield() common.Rect {
	return l.build.Playfield
}

// Scene loads and builds the named scene.
func (l *Loader) Scene(name string) (*scene.Scene, error) {
	spec, err := levels.LoadScene(name)
	if err != nil {
		return nil, err
	}
	return scene.Build(spec, l.build)
}

// Scenes builds every scene of the catalog in name order.
func (l *Loader) Scenes() ([]*scene.Scene, error) {
	names, err := levels.Names()
	if err != nil {
		return nil, err
	}
	out := make([]*scene.Scene, 0, len(names))
	for _, name := range names {
		sc, err := l.Scene(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// Options turns game.yaml into controller options.
func (l *Loader) Options(audio hooks.Audio, log *slog.Logger) Options {
	gs := l.Game
	return Options{
		StartScene: gs.StartScene,
		FinalScene: gs.FinalScene,
		EdgeOffset: gs.Screen.EdgeOffset,
		Intro:      gs.Intro,
		IntroMusic: scene.Music{Track: gs.IntroMusic.Name, Volume: gs.IntroMusic.Volume},
		EndMusic:   scene.Music{Track: gs.EndMusic.Name, Volume: gs.EndMusic.Volume},
		Footstep:   gs.Sounds.Footstep,
		Triggers: system.TriggerConfig{
			PrerequisiteNPC:      gs.Triggers.PrerequisiteNPC,
			PrerequisiteMessage:  gs.Triggers.PrerequisiteMessage,
			TradeInMessage:       gs.Triggers.TradeInMessage,
			InventoryFullMessage: gs.Triggers.InventoryFullMessage,
			MissingKeyMessage:    gs.Triggers.MissingKeyMessage,
			WrongKeyMessage:      gs.Triggers.WrongKeyMessage,
			TrapdoorSound:        gs.Sounds.Trapdoor,
		},
		WelcomeMessage: gs.WelcomeMessage,
		EndMessage:     gs.EndMessage,
		Audio:          audio,
		Logger:         log,
	}
}

// NewSession loads everything and returns a ready controller. startScene
// and skipIntro override game.yaml when set.
func NewSession(l *Loader, startScene string, skipIntro bool, audio hooks.Audio, log *slog.Logger) (*Controller, error) {
	if log == nil {
		log = slog.Default()
	}
	scenes, err := l.Scenes()
	if err != nil {
		return nil, fmt.Errorf("game: build scenes: %w", err)
	}
	WarnUnreachable(log, scenes...)

	opts := l.Options(audio, log)
	if startScene != "" {
		opts.StartScene = startScene
	}
	if skipIntro {
		opts.Intro = false
	}
	c, err := NewController(opts, scenes...)
	if err != nil {
		return nil, err
	}
	log.Info("session ready", "scenes", len(scenes), "start", opts.StartScene, "seed", l.Seed)
	return c, nil
}

// WarnUnreachable logs every scene switch a player cannot walk onto from the
// scene's spawn point and returns how many there were.
func WarnUnreachable(log *slog.Logger, scenes ...*scene.Scene) int {
	n := 0
	for _, sc := range scenes {
		lost := sc.UnreachableSwitches(sc.Player.X, sc.Player.Y)
		if len(lost) == 0 {
			continue
		}
		n += len(lost)
		log.Warn("scene switches out of reach", "scene", sc.Name, "triggers", lost)
	}
	return n
}
