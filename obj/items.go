package obj

import "github.com/milk9111/zuul/component"

// Items is the ordered table of items lying in a scene, keyed by item key.
type Items struct {
	order []string
	byKey map[string]*component.Item
}

func NewItems() *Items {
	return &Items{byKey: make(map[string]*component.Item)}
}

// Put inserts or replaces an item. A re-inserted item goes to the end.
func (t *Items) Put(it *component.Item) {
	if t == nil || it == nil {
		return
	}
	if _, ok := t.byKey[it.Key]; ok {
		t.remove(it.Key)
	}
	t.order = append(t.order, it.Key)
	t.byKey[it.Key] = it
}

func (t *Items) Get(key string) (*component.Item, bool) {
	if t == nil {
		return nil, false
	}
	it, ok := t.byKey[key]
	return it, ok
}

func (t *Items) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Take removes and returns the item stored under key.
func (t *Items) Take(key string) (*component.Item, bool) {
	it, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	t.remove(key)
	return it, true
}

func (t *Items) remove(key string) {
	delete(t.byKey, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

func (t *Items) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Each calls fn for every item in insertion order until fn returns false.
func (t *Items) Each(fn func(*component.Item) bool) {
	if t == nil {
		return
	}
	for _, key := range t.order {
		if !fn(t.byKey[key]) {
			return
		}
	}
}
