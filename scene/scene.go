package scene

import (
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/obj"
)

// Music is the looping background track of a scene.
type Music struct {
	Track  string
	Volume float64
}

// Request is a transition asked for by a trigger, waiting for the controller.
type Request struct {
	Next     string
	Preserve bool
	AnchorX  int
	AnchorY  int
}

// Scene is one named room of the game. Scenes are built once per session and
// cycle between active and inactive; they are never destroyed.
type Scene struct {
	Name       string
	Background string
	Music      Music
	Playfield  common.Rect

	Entities *obj.Registry
	Items    *obj.Items
	Player   *obj.Player

	active   bool
	rendered bool
	request  *Request
	cooldown *component.TriggerBox

	// placed holds the keys of items authored into the scene, dropped the
	// keys of items the player has put down here.
	placed  map[string]bool
	dropped map[string]bool
}

// New creates an empty, inactive scene around player.
func New(name string, player *obj.Player) *Scene {
	return &Scene{
		Name:      name,
		Playfield: player.Bounds,
		Entities:  obj.NewRegistry(),
		Items:     obj.NewItems(),
		Player:    player,
		placed:    make(map[string]bool),
		dropped:   make(map[string]bool),
	}
}

// Place puts an authored item into the scene.
func (s *Scene) Place(it *component.Item) {
	s.placed[it.Key] = true
	s.Items.Put(it)
}

func (s *Scene) Active() bool   { return s.active }
func (s *Scene) Rendered() bool { return s.rendered }

func (s *Scene) Activate() {
	s.active = true
}

// Deactivate marks the scene inactive and unrendered so that its music starts
// again on the next visit.
func (s *Scene) Deactivate() {
	s.active = false
	s.rendered = false
}

// Enter starts the scene's music the first tick it is active and unrendered.
// It reports whether anything happened.
func (s *Scene) Enter(audio hooks.Audio) bool {
	if !s.active || s.rendered {
		return false
	}
	audio.StopAll()
	if s.Music.Track != "" {
		audio.PlayLoop(s.Music.Track, s.Music.Volume)
	}
	s.rendered = true
	return true
}

// RequestScene records the scene the player should move to. The request is
// picked up by the controller at the end of the tick.
func (s *Scene) RequestScene(next string, preserve bool, anchorX, anchorY int) {
	s.request = &Request{Next: next, Preserve: preserve, AnchorX: anchorX, AnchorY: anchorY}
}

// NextScene returns the requested scene name, if any.
func (s *Scene) NextScene() (string, bool) {
	if s.request == nil {
		return "", false
	}
	return s.request.Next, true
}

func (s *Scene) Request() (Request, bool) {
	if s.request == nil {
		return Request{}, false
	}
	return *s.request, true
}

// PreserveCoordinates reports the preserve flag of the pending request.
func (s *Scene) PreserveCoordinates() bool {
	return s.request != nil && s.request.Preserve
}

func (s *Scene) ResetNextScene() {
	s.request = nil
}

// SetCooldown suppresses t until the player has left it.
func (s *Scene) SetCooldown(t *component.TriggerBox) {
	s.cooldown = t
}

func (s *Scene) Cooldown() *component.TriggerBox {
	return s.cooldown
}

// Triggers returns every entity trigger of the given kind.
func (s *Scene) Triggers(kind component.TriggerKind) []*component.TriggerBox {
	return s.Entities.Triggers(kind)
}

// FindTrigger returns the trigger owned by the named entity or item.
func (s *Scene) FindTrigger(owner string) (*component.TriggerBox, bool) {
	if e, ok := s.Entities.Get(owner); ok && e.Trigger != nil {
		return e.Trigger, true
	}
	if it, ok := s.Items.Get(owner); ok && it.Trigger != nil {
		return it.Trigger, true
	}
	return nil, false
}

// Animation returns the animation of the named entity.
func (s *Scene) Animation(owner string) (*component.Animation, bool) {
	e, ok := s.Entities.Get(owner)
	if !ok || e.Animation == nil {
		return nil, false
	}
	return e.Animation, true
}

// Animate advances every entity animation by one tick.
func (s *Scene) Animate() {
	s.Entities.Each(func(e *obj.Entity) bool {
		e.Animation.Update()
		return true
	})
}

// Render draws the background, entities, loose items and the player.
func (s *Scene) Render(r hooks.Renderer) {
	if s.Background != "" {
		r.DrawStatic(s.Background, s.Playfield)
	}
	s.Entities.Each(func(e *obj.Entity) bool {
		if e.Sprite == "" {
			return true
		}
		if e.Animated() {
			r.DrawAnimationFrame(e.Sprite, e.Animation.Frame(), e.Bounds)
		} else {
			r.DrawStatic(e.Sprite, e.Bounds)
		}
		return true
	})
	s.Items.Each(func(it *component.Item) bool {
		r.DrawStatic(it.Sprite, it.Bounds)
		return true
	})
	p := s.Player
	r.DrawAnimationFrame(p.Sprite(), p.Walk.Frame(), p.Rect())
}

// dropOffset is how far ahead of the player a dropped item lands.
const dropOffset = 75

// Drop places item in the scene in front of the player and re-arms its pickup
// trigger.
func (s *Scene) Drop(item *component.Item) {
	p := s.Player
	x, y := p.X, p.Y
	switch p.Facing {
	case common.Up:
		y -= dropOffset
	case common.Right:
		x += dropOffset
	case common.Down:
		y += dropOffset
	case common.Left:
		x -= dropOffset - item.Bounds.W
	}
	item.PlaceAt(x, y)
	item.Trigger.Reset()
	s.dropped[item.Key] = true
	s.Items.Put(item)
}

// Inherit carries the play state of old, an earlier build of the same scene,
// into s. Latches, animation progress and the cooldown move over by owner,
// and a scene whose music already plays does not start it again.
// Items already taken from old stay gone, items dropped into old stay where
// they lie, and new authored items are skipped when held reports the player
// already carries them.
func (s *Scene) Inherit(old *Scene, held func(key string) bool) {
	s.Entities.Each(func(e *obj.Entity) bool {
		prev, ok := old.Entities.Get(e.Name)
		if !ok {
			return true
		}
		if e.Trigger != nil && prev.Trigger != nil && prev.Trigger.Latched() {
			e.Trigger.Latch()
		}
		e.Animation.CopyState(prev.Animation)
		return true
	})

	items := obj.NewItems()
	old.Items.Each(func(it *component.Item) bool {
		if old.dropped[it.Key] {
			items.Put(it)
			s.dropped[it.Key] = true
		} else if fresh, ok := s.Items.Get(it.Key); ok {
			items.Put(fresh)
		}
		return true
	})
	s.Items.Each(func(it *component.Item) bool {
		if old.placed[it.Key] || items.Has(it.Key) {
			return true
		}
		if held == nil || !held(it.Key) {
			items.Put(it)
		}
		return true
	})
	s.Items = items

	s.rendered = old.rendered
	if cd := old.Cooldown(); cd != nil {
		if t, ok := s.FindTrigger(cd.Owner); ok {
			s.cooldown = t
		}
	}
}
