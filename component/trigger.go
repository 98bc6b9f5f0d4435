package component

import (
	"fmt"
	"strings"

	"github.com/milk9111/zuul/common"
)

// TriggerKind selects what happens when the player overlaps a trigger.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerSceneSwitch
	TriggerBorderSceneSwitch
	TriggerLockedSceneSwitch
	TriggerMessage
	TriggerLockedMessage
	TriggerTrapdoor
	TriggerItem
	TriggerTradeInSupply
)

var triggerKindNames = map[TriggerKind]string{
	TriggerSceneSwitch:       "SCENESWITCH",
	TriggerBorderSceneSwitch: "BORDER_SCENESWITCH",
	TriggerLockedSceneSwitch: "LOCKEDSCENESWITCH",
	TriggerMessage:           "MESSAGE",
	TriggerLockedMessage:     "LOCKEDMESSAGE",
	TriggerTrapdoor:          "TRAPDOOR",
	TriggerItem:              "ITEM",
	TriggerTradeInSupply:     "TRADEINSUPPLY",
}

func (k TriggerKind) String() string {
	if name, ok := triggerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TriggerKind(%d)", int(k))
}

// SwitchesScene reports whether the kind can request a scene transition.
func (k TriggerKind) SwitchesScene() bool {
	switch k {
	case TriggerSceneSwitch, TriggerBorderSceneSwitch, TriggerLockedSceneSwitch, TriggerTrapdoor:
		return true
	}
	return false
}

// ParseTriggerKind parses the upper-case names used in scene files.
func ParseTriggerKind(s string) (TriggerKind, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range triggerKindNames {
		if name == want {
			return k, nil
		}
	}
	return TriggerNone, fmt.Errorf("component: unknown trigger kind %q", s)
}

// TriggerBox is an owner's rectangle grown by a margin. Value is the kind's
// payload: a scene name for switches, text for messages and pickups.
type TriggerBox struct {
	Owner     string
	Kind      TriggerKind
	Direction common.Direction
	// AnchorX/AnchorY is where the player lands in the target scene.
	AnchorX int
	AnchorY int
	Value   string

	Box    common.Rect
	Margin int

	latched bool
}

// TriggerOpts carries the non-geometric fields of a trigger.
type TriggerOpts struct {
	Owner     string
	Kind      TriggerKind
	Direction common.Direction
	AnchorX   int
	AnchorY   int
	Value     string
	Margin    int
}

// NewTriggerBox builds a trigger around bounds expanded by opts.Margin.
func NewTriggerBox(opts TriggerOpts, bounds common.Rect) *TriggerBox {
	return &TriggerBox{
		Owner:     opts.Owner,
		Kind:      opts.Kind,
		Direction: opts.Direction,
		AnchorX:   opts.AnchorX,
		AnchorY:   opts.AnchorY,
		Value:     opts.Value,
		Box:       bounds.Expand(opts.Margin),
		Margin:    opts.Margin,
	}
}

// IsTriggering reports whether other overlaps the expanded box.
func (t *TriggerBox) IsTriggering(other common.Rect) bool {
	if t == nil {
		return false
	}
	return t.Box.Intersects(other)
}

// MoveTo repositions the trigger so that its owner's top-left is at x, y.
func (t *TriggerBox) MoveTo(x, y int) {
	if t == nil {
		return
	}
	t.Box = t.Box.MoveTo(x-t.Margin, y-t.Margin)
}

func (t *TriggerBox) Latched() bool {
	return t != nil && t.latched
}

func (t *TriggerBox) Latch() {
	if t == nil {
		return
	}
	t.latched = true
}

// Reset clears the latch so the trigger can fire again.
func (t *TriggerBox) Reset() {
	if t == nil {
		return
	}
	t.latched = false
}
