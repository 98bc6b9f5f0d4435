package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/scene"
)

const (
	keySuffix    = "_key"
	supplySuffix = "_supply"
)

// TriggerConfig holds the names and texts the dispatcher needs that are not
// part of any single trigger. PrerequisiteNPC owns the MESSAGE trigger that
// unlocks LOCKEDMESSAGE and TRADEINSUPPLY triggers once latched.
// WrongKeyMessage is a format string receiving the selected item name.
type TriggerConfig struct {
	PrerequisiteNPC      string
	PrerequisiteMessage  string
	TradeInMessage       string
	InventoryFullMessage string
	MissingKeyMessage    string
	WrongKeyMessage      string
	TrapdoorSound        string
}

// DefaultTriggerConfig mirrors prefabs/game.yaml.
func DefaultTriggerConfig() TriggerConfig {
	return TriggerConfig{
		PrerequisiteNPC:      "npc_commander",
		PrerequisiteMessage:  "You need to talk to the commander first!",
		TradeInMessage:       "You don't have what they need.",
		InventoryFullMessage: "Your inventory is full!",
		MissingKeyMessage:    "You don't have the required key for this door!",
		WrongKeyMessage:      "You can't open this door with a %s!",
		TrapdoorSound:        "trapdoor_sound",
	}
}

// PrerequisiteFunc reports whether the trigger owned by owner has latched in
// any scene.
type PrerequisiteFunc func(owner string) bool

// TriggerDispatcher applies the effect of the trigger the player overlaps.
// Failure paths only change the inventory message.
type TriggerDispatcher struct {
	cfg          TriggerConfig
	prerequisite PrerequisiteFunc
	audio        hooks.Audio
	log          *slog.Logger
}

func NewTriggerDispatcher(cfg TriggerConfig, prerequisite PrerequisiteFunc, audio hooks.Audio, log *slog.Logger) *TriggerDispatcher {
	if prerequisite == nil {
		prerequisite = func(string) bool { return false }
	}
	if audio == nil {
		audio = hooks.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &TriggerDispatcher{cfg: cfg, prerequisite: prerequisite, audio: audio, log: log}
}

// Dispatch evaluates the entity trigger and then the item trigger the player
// overlaps in sc. It returns how many triggers fired.
func (d *TriggerDispatcher) Dispatch(sc *scene.Scene, inv *component.Inventory) int {
	p := sc.Player
	box := p.Rect()

	cooldown := sc.Cooldown()
	if cooldown != nil && !cooldown.IsTriggering(box) {
		sc.SetCooldown(nil)
		cooldown = nil
	}

	fired := 0
	for _, t := range []*component.TriggerBox{
		p.CurrentTrigger(sc.Entities),
		p.CurrentItemTrigger(sc.Items),
	} {
		if t == nil || t == cooldown {
			continue
		}
		if d.fire(sc, inv, t) {
			fired++
		}
	}
	return fired
}

func (d *TriggerDispatcher) fire(sc *scene.Scene, inv *component.Inventory, t *component.TriggerBox) bool {
	if t.Latched() && t.Kind != component.TriggerTrapdoor {
		return false
	}

	switch t.Kind {
	case component.TriggerSceneSwitch:
		return d.sceneSwitch(sc, t, true)
	case component.TriggerBorderSceneSwitch:
		return d.sceneSwitch(sc, t, false)
	case component.TriggerLockedSceneSwitch:
		return d.lockedSceneSwitch(sc, inv, t)
	case component.TriggerMessage:
		inv.SetMessage(t.Value)
		t.Latch()
		return true
	case component.TriggerLockedMessage:
		if d.unlocked() {
			inv.SetMessage(t.Value)
		} else {
			inv.SetMessage(d.cfg.PrerequisiteMessage)
		}
		return true
	case component.TriggerTrapdoor:
		return d.trapdoor(sc, t)
	case component.TriggerItem:
		return d.pickUp(sc, inv, t)
	case component.TriggerTradeInSupply:
		return d.tradeIn(inv, t)
	}
	return false
}

func (d *TriggerDispatcher) unlocked() bool {
	if d.cfg.PrerequisiteNPC == "" {
		return true
	}
	return d.prerequisite(d.cfg.PrerequisiteNPC)
}

// sceneSwitch is a pulse: it requests the transition and stays armed.
func (d *TriggerDispatcher) sceneSwitch(sc *scene.Scene, t *component.TriggerBox, preserve bool) bool {
	if !t.Direction.Accepts(sc.Player.Facing) {
		return false
	}
	sc.RequestScene(t.Value, preserve, t.AnchorX, t.AnchorY)
	t.Reset()
	d.log.Debug("scene switch requested", "scene", sc.Name, "owner", t.Owner, "next", t.Value, "preserve", preserve)
	return true
}

func (d *TriggerDispatcher) lockedSceneSwitch(sc *scene.Scene, inv *component.Inventory, t *component.TriggerBox) bool {
	if !t.Direction.Accepts(sc.Player.Facing) {
		return false
	}
	key := t.Owner + keySuffix
	if !inv.HasSelected(key) {
		if it, ok := inv.Selected(); ok {
			inv.SetMessage(fmt.Sprintf(d.cfg.WrongKeyMessage, it.Name))
		} else {
			inv.SetMessage(d.cfg.MissingKeyMessage)
		}
		return false
	}
	inv.Remove(key)
	t.Latch()
	sc.RequestScene(t.Value, true, t.AnchorX, t.AnchorY)
	d.log.Info("door unlocked", "scene", sc.Name, "door", t.Owner, "next", t.Value)
	return true
}

// trapdoor opens on the first overlap and drops the player through on the
// first overlap after the opening animation has finished.
func (d *TriggerDispatcher) trapdoor(sc *scene.Scene, t *component.TriggerBox) bool {
	anim, _ := sc.Animation(t.Owner)
	if !t.Latched() {
		anim.PlayOnce()
		t.Latch()
		if d.cfg.TrapdoorSound != "" {
			d.audio.PlayOnce(d.cfg.TrapdoorSound)
		}
		return true
	}
	if anim != nil && !anim.Finished() {
		return false
	}
	sc.RequestScene(t.Value, true, t.AnchorX, t.AnchorY)
	anim.Reset()
	t.Reset()
	d.log.Debug("trapdoor passed", "scene", sc.Name, "owner", t.Owner, "next", t.Value)
	return true
}

func (d *TriggerDispatcher) pickUp(sc *scene.Scene, inv *component.Inventory, t *component.TriggerBox) bool {
	if inv.Full() {
		inv.SetMessage(d.cfg.InventoryFullMessage)
		return false
	}
	it, ok := sc.Items.Take(t.Owner)
	if !ok {
		return false
	}
	inv.Add(it)
	t.Latch()
	inv.SetMessage(t.Value)
	d.log.Info("item picked up", "scene", sc.Name, "item", it.Key)
	return true
}

func (d *TriggerDispatcher) tradeIn(inv *component.Inventory, t *component.TriggerBox) bool {
	if !d.unlocked() {
		inv.SetMessage(d.cfg.PrerequisiteMessage)
		return false
	}
	supply := t.Owner + supplySuffix
	if !inv.HasSelected(supply) {
		inv.SetMessage(d.cfg.TradeInMessage)
		return false
	}
	inv.Remove(supply)
	t.Latch()
	inv.SetMessage(t.Value)
	d.log.Info("supply traded in", "owner", t.Owner)
	return true
}
