package component

// MaxItems is how many items the inventory can hold.
const MaxItems = 4

// Inventory is the single bag shared by every scene in a session.
type Inventory struct {
	items    []*Item
	selected int
	message  string
}

func NewInventory(message string) *Inventory {
	return &Inventory{
		items:   make([]*Item, 0, MaxItems),
		message: message,
	}
}

// Add appends item unless the inventory is full or item is nil.
func (inv *Inventory) Add(item *Item) bool {
	if inv == nil || item == nil || inv.Full() {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove deletes the first item with the given key.
func (inv *Inventory) Remove(key string) bool {
	if inv == nil {
		return false
	}
	for i, it := range inv.items {
		if it.Key == key {
			_, ok := inv.RemoveAt(i)
			return ok
		}
	}
	return false
}

// RemoveAt deletes and returns the item in slot i.
func (inv *Inventory) RemoveAt(i int) (*Item, bool) {
	if inv == nil || !inv.Exists(i) {
		return nil, false
	}
	it := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return it, true
}

// Exists reports whether slot i holds an item.
func (inv *Inventory) Exists(i int) bool {
	return inv != nil && i >= 0 && i < len(inv.items)
}

func (inv *Inventory) Item(i int) (*Item, bool) {
	if !inv.Exists(i) {
		return nil, false
	}
	return inv.items[i], true
}

// Items returns a copy of the carried items in slot order.
func (inv *Inventory) Items() []*Item {
	if inv == nil {
		return nil
	}
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.items)
}

func (inv *Inventory) Full() bool {
	return inv != nil && len(inv.items) >= MaxItems
}

// Select sets the selected slot. Slots past the end are allowed and select
// nothing.
func (inv *Inventory) Select(slot int) {
	if inv == nil || slot < 0 || slot >= MaxItems {
		return
	}
	inv.selected = slot
}

func (inv *Inventory) SelectedSlot() int {
	if inv == nil {
		return 0
	}
	return inv.selected
}

// Selected returns the item in the selected slot, if any.
func (inv *Inventory) Selected() (*Item, bool) {
	return inv.Item(inv.SelectedSlot())
}

// HasSelected reports whether the selected item has the given key.
func (inv *Inventory) HasSelected(key string) bool {
	it, ok := inv.Selected()
	return ok && it.Key == key
}

func (inv *Inventory) Message() string {
	if inv == nil {
		return ""
	}
	return inv.message
}

func (inv *Inventory) SetMessage(msg string) {
	if inv == nil {
		return
	}
	inv.message = msg
}
