package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/levels"
	"github.com/milk9111/zuul/obj"
)

// ErrNoPlayerSpawn is returned when a scene's spawn point does not fit the
// player inside the playfield.
var ErrNoPlayerSpawn = errors.New("scene: no valid player spawn")

// BuildOptions carries the session settings every scene is built with.
type BuildOptions struct {
	Playfield   common.Rect
	PlayerSize  int
	PlayerSpeed int
	// LegacyAnchorAlias stores a trigger's anchor y in AnchorX and leaves
	// AnchorY zero, as older scene files expect.
	LegacyAnchorAlias bool
	// Rand picks maze decorations. A nil Rand always picks the first variant.
	Rand *rand.Rand
}

// Build turns a scene description into an inactive scene with its own player.
func Build(spec *levels.Scene, opts BuildOptions) (*Scene, error) {
	if spec == nil {
		return nil, errors.New("scene: nil spec")
	}

	p := obj.NewPlayer(spec.Spawn.X, spec.Spawn.Y, opts.PlayerSize, opts.PlayerSpeed, opts.Playfield)
	if !fits(opts.Playfield, p.Rect()) {
		return nil, fmt.Errorf("scene %s: spawn at %d,%d: %w", spec.Name, spec.Spawn.X, spec.Spawn.Y, ErrNoPlayerSpawn)
	}

	sc := New(spec.Name, p)
	sc.Background = spec.Background
	sc.Music = Music{Track: spec.Music.Track, Volume: spec.Music.Volume}

	if spec.Maze != nil {
		populateMaze(sc, spec.Maze, opts.Rand)
	}

	for _, es := range spec.Entities {
		e, err := buildEntity(es, opts.LegacyAnchorAlias)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
		sc.Entities.Add(e)
	}

	for _, is := range spec.Items {
		it, err := buildItem(is)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
		}
		sc.Place(it)
	}

	return sc, nil
}

func buildEntity(es levels.Entity, legacyAnchor bool) (*obj.Entity, error) {
	e := obj.NewEntity(es.Name, es.Sprite, common.NewRect(es.X, es.Y, es.W, es.H))
	if es.Collidable {
		e.WithCollision()
	}
	if es.Animation != nil {
		a := es.Animation
		e.WithAnimation(component.NewAnimation(a.Frames, a.TicksPerFrame, a.Loop, a.Autoplay))
	}
	if es.Trigger == nil {
		return e, nil
	}

	kind, err := component.ParseTriggerKind(es.Trigger.Kind)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", es.Name, err)
	}
	anchorX, anchorY := es.Trigger.Anchor.X, es.Trigger.Anchor.Y
	if legacyAnchor {
		anchorX, anchorY = anchorY, 0
	}
	e.WithTrigger(component.TriggerOpts{
		Kind:      kind,
		Direction: es.Trigger.Direction.Resolve(),
		AnchorX:   anchorX,
		AnchorY:   anchorY,
		Value:     es.Trigger.Value,
		Margin:    es.Trigger.Margin,
	})
	return e, nil
}

func buildItem(is levels.Item) (*component.Item, error) {
	kind, err := component.ParseItemKind(is.Kind)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", is.Key, err)
	}
	w, h := is.W, is.H
	if w <= 0 {
		w = defaultItemSize
	}
	if h <= 0 {
		h = defaultItemSize
	}
	bounds := common.NewRect(is.X, is.Y, w, h)
	return component.NewItem(is.Key, is.Name, kind, is.Icon, is.Sprite, bounds, is.Message, is.Margin), nil
}

const defaultItemSize = 32

func fits(outer, inner common.Rect) bool {
	return inner.X > outer.X && inner.Y > outer.Y &&
		inner.Right() < outer.Right() && inner.Bottom() < outer.Bottom()
}
