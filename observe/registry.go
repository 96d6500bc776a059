package observe

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// registry is the ordered listener list owned by a single Type.
type registry struct {
	mu       sync.Mutex
	bindings []Binding
}

func (r *registry) append(b Binding) {
	r.mu.Lock()
	r.bindings = append(r.bindings, b)
	r.mu.Unlock()
}

// remove drops the binding with id. The backing array is never mutated in
// place so snapshots handed out earlier stay valid.
func (r *registry) remove(id ulid.ULID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bindings {
		if b.ID != id {
			continue
		}
		next := make([]Binding, 0, len(r.bindings)-1)
		next = append(next, r.bindings[:i]...)
		r.bindings = append(next, r.bindings[i+1:]...)
		return nil
	}
	return ErrNotBound
}

func (r *registry) snapshot() []Binding {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.bindings) == 0 {
		return nil
	}
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

func (r *registry) empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings) == 0
}
