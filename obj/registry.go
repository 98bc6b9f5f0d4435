package obj

import "github.com/milk9111/zuul/component"

// Registry holds a scene's entities by name and remembers insertion order.
// Iteration always follows that order; replacing an entity keeps its slot.
type Registry struct {
	order  []string
	byName map[string]*Entity
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Entity)}
}

// Add inserts or replaces the entity stored under e.Name.
func (r *Registry) Add(e *Entity) {
	if r == nil || e == nil {
		return
	}
	if _, ok := r.byName[e.Name]; !ok {
		r.order = append(r.order, e.Name)
	}
	r.byName[e.Name] = e
}

func (r *Registry) Get(name string) (*Entity, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.byName[name]
	return e, ok
}

// Remove deletes the named entity, keeping the order of the rest.
func (r *Registry) Remove(name string) bool {
	if r == nil {
		return false
	}
	if _, ok := r.byName[name]; !ok {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Names returns entity names in insertion order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Each calls fn for every entity in insertion order until fn returns false.
func (r *Registry) Each(fn func(*Entity) bool) {
	if r == nil {
		return
	}
	for _, name := range r.order {
		if !fn(r.byName[name]) {
			return
		}
	}
}

// Triggers returns every trigger of the given kind in insertion order.
func (r *Registry) Triggers(kind component.TriggerKind) []*component.TriggerBox {
	var out []*component.TriggerBox
	r.Each(func(e *Entity) bool {
		if e.Trigger != nil && e.Trigger.Kind == kind {
			out = append(out, e.Trigger)
		}
		return true
	})
	return out
}
