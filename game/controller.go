package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/obj"
	"github.com/milk9111/zuul/scene"
	"github.com/milk9111/zuul/system"
)

var (
	ErrUnknownScene   = errors.New("game: unknown scene")
	ErrDuplicateScene = errors.New("game: duplicate scene")
	ErrNoScenes       = errors.New("game: no scenes")
)

// DefaultEdgeOffset is how far from the target edge or anchor a player lands.
const DefaultEdgeOffset = 10

type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Options configures a Controller. Zero values are usable except StartScene.
type Options struct {
	StartScene string
	// FinalScene is where trading in every supply ends the game. Empty
	// disables the end condition.
	FinalScene string
	EdgeOffset int
	Intro      bool
	IntroMusic scene.Music
	EndMusic   scene.Music
	Footstep   string
	Triggers   system.TriggerConfig

	WelcomeMessage string
	EndMessage     string

	Audio  hooks.Audio
	Logger *slog.Logger
}

// PendingTransition is captured at the end of the tick a scene asks for a
// transition and consumed at the start of the next one.
type PendingTransition struct {
	From     string
	To       string
	Preserve bool
	AnchorX  int
	AnchorY  int
	Facing   common.Direction
	X, Y     int
}

// Controller owns every scene of a session, the single inventory and the
// pointer to the scene being played.
type Controller struct {
	opts Options

	scenes  map[string]*scene.Scene
	order   []string
	current *scene.Scene

	inventory *component.Inventory
	pending   *PendingTransition
	phase     Phase

	movement *system.MovementSystem
	triggers *system.TriggerDispatcher

	audio        hooks.Audio
	log          *slog.Logger
	introPlaying bool
}

func NewController(opts Options, scenes ...*scene.Scene) (*Controller, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	if opts.EdgeOffset == 0 {
		opts.EdgeOffset = DefaultEdgeOffset
	}
	if opts.Audio == nil {
		opts.Audio = hooks.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{
		opts:      opts,
		scenes:    make(map[string]*scene.Scene, len(scenes)),
		inventory: component.NewInventory(opts.WelcomeMessage),
		audio:     opts.Audio,
		log:       opts.Logger,
	}
	for _, sc := range scenes {
		if _, dup := c.scenes[sc.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScene, sc.Name)
		}
		c.scenes[sc.Name] = sc
		c.order = append(c.order, sc.Name)
	}
	for _, sc := range scenes {
		if err := c.checkTargets(sc); err != nil {
			return nil, err
		}
	}

	start, ok := c.scenes[opts.StartScene]
	if !ok {
		return nil, fmt.Errorf("%w: start scene %q", ErrUnknownScene, opts.StartScene)
	}
	if opts.FinalScene != "" {
		if _, ok := c.scenes[opts.FinalScene]; !ok {
			return nil, fmt.Errorf("%w: final scene %q", ErrUnknownScene, opts.FinalScene)
		}
	}

	c.movement = system.NewMovementSystem(c.audio, opts.Footstep)
	c.triggers = system.NewTriggerDispatcher(opts.Triggers, c.latchedAnywhere, c.audio, c.log)

	c.current = start
	start.Activate()
	if opts.Intro {
		c.phase = PhaseIntro
	} else {
		c.phase = PhasePlaying
	}
	return c, nil
}

// checkTargets makes sure every scene switch in sc leads somewhere.
func (c *Controller) checkTargets(sc *scene.Scene) error {
	var err error
	sc.Entities.Each(func(e *obj.Entity) bool {
		t := e.Trigger
		if t == nil || !t.Kind.SwitchesScene() {
			return true
		}
		if _, ok := c.scenes[t.Value]; !ok {
			err = fmt.Errorf("%w: %s/%s leads to %q", ErrUnknownScene, sc.Name, t.Owner, t.Value)
			return false
		}
		return true
	})
	return err
}

// Update advances the game by one logic tick.
func (c *Controller) Update(in component.Input) {
	switch c.phase {
	case PhaseEnded:
		return
	case PhaseIntro:
		c.updateIntro(in)
		return
	}

	if c.pending != nil {
		c.handoff()
		return
	}

	sc := c.current
	if sc.Enter(c.audio) {
		c.log.Debug("scene entered", "scene", sc.Name)
	}

	if in.Slot >= 1 && in.Slot <= component.MaxItems {
		c.inventory.Select(in.Slot - 1)
	}
	if in.Drop {
		c.drop()
	}
	c.movement.Update(sc.Player, sc.Entities, in)

	c.triggers.Dispatch(sc, c.inventory)

	c.bookkeeping()

	if c.finished() {
		c.end()
		return
	}

	sc.Animate()
}

func (c *Controller) updateIntro(in component.Input) {
	if !c.introPlaying {
		c.audio.StopAll()
		if c.opts.IntroMusic.Track != "" {
			c.audio.PlayLoop(c.opts.IntroMusic.Track, c.opts.IntroMusic.Volume)
		}
		c.introPlaying = true
	}
	if !in.Start {
		return
	}
	c.phase = PhasePlaying
	c.log.Info("game started", "scene", c.current.Name)
}

// bookkeeping turns a scene's request into a pending transition. The player
// is moved on the following tick.
func (c *Controller) bookkeeping() {
	sc := c.current
	req, ok := sc.Request()
	if !ok {
		return
	}
	next, ok := c.scenes[req.Next]
	if !ok {
		c.log.Warn("transition to unknown scene dropped", "scene", sc.Name, "next", req.Next)
		sc.ResetNextScene()
		return
	}

	p := sc.Player
	c.pending = &PendingTransition{
		From:     sc.Name,
		To:       next.Name,
		Preserve: req.Preserve,
		AnchorX:  req.AnchorX,
		AnchorY:  req.AnchorY,
		Facing:   p.Facing,
		X:        p.X,
		Y:        p.Y,
	}
	sc.Deactivate()
	next.Activate()
}

func (c *Controller) handoff() {
	tr := *c.pending
	c.pending = nil

	from := c.scenes[tr.From]
	to := c.scenes[tr.To]

	np := to.Player
	x, y := Landing(tr, to.Playfield, np.Size, c.opts.EdgeOffset)
	np.SetPosition(x, y)
	np.Facing = tr.Facing
	c.movement.Halt(np)

	from.ResetNextScene()
	c.current = to

	// A trigger under the landing spot waits until the player steps off it.
	to.SetCooldown(np.CurrentTrigger(to.Entities))

	c.log.Info("scene changed", "from", tr.From, "to", tr.To, "x", x, "y", y, "facing", tr.Facing.String())
}

// Landing computes where a player arrives in a scene with the given
// playfield. Preserved transitions land next to the trigger's anchor, border
// crossings land against an edge; the other axis is kept.
func Landing(tr PendingTransition, playfield common.Rect, size, offset int) (x, y int) {
	x, y = tr.X, tr.Y
	if tr.Preserve {
		switch tr.Facing {
		case common.Right:
			x = tr.AnchorX + offset
		case common.Left:
			x = tr.AnchorX - offset
		case common.Up:
			y = tr.AnchorY - offset
		case common.Down:
			y = tr.AnchorY + offset
		}
		return x, y
	}
	switch tr.Facing {
	case common.Right:
		x = playfield.Right() - size - offset
	case common.Left:
		x = playfield.X + offset
	case common.Down:
		y = playfield.Bottom() - size - offset
	case common.Up:
		y = playfield.Y + offset
	}
	return x, y
}

// activeScene is the scene the player is in or, during a handoff, the scene
// the player is about to land in.
func (c *Controller) activeScene() *scene.Scene {
	if c.pending != nil {
		return c.scenes[c.pending.To]
	}
	return c.current
}

// finished reports whether the active scene is the final scene with every
// supply traded in.
func (c *Controller) finished() bool {
	sc := c.activeScene()
	if c.opts.FinalScene == "" || sc.Name != c.opts.FinalScene {
		return false
	}
	for _, t := range sc.Triggers(component.TriggerTradeInSupply) {
		if !t.Latched() {
			return false
		}
	}
	return true
}

func (c *Controller) end() {
	c.phase = PhaseEnded
	c.audio.StopAll()
	if c.opts.EndMusic.Track != "" {
		c.audio.PlayLoop(c.opts.EndMusic.Track, c.opts.EndMusic.Volume)
	}
	if c.opts.EndMessage != "" {
		c.inventory.SetMessage(c.opts.EndMessage)
	}
	c.log.Info("game complete", "scene", c.activeScene().Name)
}

func (c *Controller) drop() {
	it, ok := c.inventory.RemoveAt(c.inventory.SelectedSlot())
	if !ok {
		return
	}
	c.current.Drop(it)
	c.inventory.SetMessage(fmt.Sprintf("You dropped the %s.", it.Name))
	c.log.Debug("item dropped", "scene", c.current.Name, "item", it.Key)
}

func (c *Controller) latchedAnywhere(owner string) bool {
	for _, name := range c.order {
		if t, ok := c.scenes[name].FindTrigger(owner); ok && t.Latched() {
			return true
		}
	}
	return false
}

// Render draws the current scene, or the title and end backdrops.
func (c *Controller) Render(r hooks.Renderer) {
	switch c.phase {
	case PhaseIntro:
		r.DrawStatic("intro_background", c.current.Playfield)
	case PhaseEnded:
		r.DrawStatic("end_background", c.current.Playfield)
	default:
		c.current.Render(r)
	}
}

// CurrentTriggerMessage is the text shown in the inventory bar.
func (c *Controller) CurrentTriggerMessage() (string, bool) {
	msg := c.inventory.Message()
	return msg, msg != ""
}

// PendingNextScene is the scene the player is about to enter, if any.
func (c *Controller) PendingNextScene() (string, bool) {
	if c.pending != nil {
		return c.pending.To, true
	}
	return c.current.NextScene()
}

// holds reports whether the inventory carries an item with the given key.
func (c *Controller) holds(key string) bool {
	for _, it := range c.inventory.Items() {
		if it.Key == key {
			return true
		}
	}
	return false
}

func (c *Controller) Pending() (PendingTransition, bool) {
	if c.pending == nil {
		return PendingTransition{}, false
	}
	return *c.pending, true
}

func (c *Controller) IsGameComplete() bool {
	return c.phase == PhaseEnded
}

func (c *Controller) Phase() Phase                    { return c.phase }
func (c *Controller) Inventory() *component.Inventory { return c.inventory }
func (c *Controller) CurrentScene() *scene.Scene      { return c.current }

// Scene returns the named scene.
func (c *Controller) Scene(name string) (*scene.Scene, bool) {
	sc, ok := c.scenes[name]
	return sc, ok
}

// SceneNames lists scenes in the order they were given.
func (c *Controller) SceneNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ReloadScene swaps in a rebuilt copy of an existing scene. The rebuilt scene
// inherits the play state of the old one, and when it is the current scene
// the player keeps its position and facing.
func (c *Controller) ReloadScene(sc *scene.Scene) error {
	old, ok := c.scenes[sc.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, sc.Name)
	}
	if err := c.checkTargets(sc); err != nil {
		return err
	}

	sc.Inherit(old, c.holds)
	if old.Active() {
		sc.Player.SetPosition(old.Player.X, old.Player.Y)
		sc.Player.Facing = old.Player.Facing
		sc.Activate()
	}
	if req, ok := old.Request(); ok {
		sc.RequestScene(req.Next, req.Preserve, req.AnchorX, req.AnchorY)
	}
	c.scenes[sc.Name] = sc
	if c.current == old {
		c.current = sc
	}
	c.log.Info("scene reloaded", "scene", sc.Name)
	return nil
}
