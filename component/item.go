package component

import (
	"fmt"
	"strings"

	"github.com/milk9111/zuul/common"
)

type ItemKind int

const (
	ItemKey ItemKind = iota
	ItemSupply
	ItemSpacecake
)

func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "KEY"
	case ItemSupply:
		return "SUPPLY"
	case ItemSpacecake:
		return "SPACECAKE"
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "KEY":
		return ItemKey, nil
	case "SUPPLY":
		return ItemSupply, nil
	case "SPACECAKE":
		return ItemSpacecake, nil
	}
	return 0, fmt.Errorf("component: unknown item kind %q", s)
}

// Item is a collectible lying in a scene or carried in the inventory.
// Trigger is the pickup trigger; its owner is the item key.
type Item struct {
	Key    string
	Name   string
	Kind   ItemKind
	Icon   string
	Sprite string
	Bounds common.Rect

	Trigger *TriggerBox
}

// NewItem creates an item at bounds with an ITEM pickup trigger whose
// payload is the pickup message.
func NewItem(key, name string, kind ItemKind, icon, sprite string, bounds common.Rect, message string, margin int) *Item {
	return &Item{
		Key:    key,
		Name:   name,
		Kind:   kind,
		Icon:   icon,
		Sprite: sprite,
		Bounds: bounds,
		Trigger: NewTriggerBox(TriggerOpts{
			Owner:     key,
			Kind:      TriggerItem,
			Direction: common.Any,
			Value:     message,
			Margin:    margin,
		}, bounds),
	}
}

// PlaceAt moves the item and its pickup trigger.
func (it *Item) PlaceAt(x, y int) {
	if it == nil {
		return
	}
	it.Bounds = it.Bounds.MoveTo(x, y)
	it.Trigger.MoveTo(x, y)
}
