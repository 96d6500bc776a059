package observe

import (
	"errors"
	"sync"
)

type tracked struct {
	typ     *Type
	binding Binding
}

// Subscriptions tracks bindings across types and releases them together.
type Subscriptions struct {
	mu      sync.Mutex
	tracked []tracked
}

// Add tracks a binding made on t.
func (s *Subscriptions) Add(t *Type, b Binding) {
	if s == nil || t == nil {
		return
	}
	s.mu.Lock()
	s.tracked = append(s.tracked, tracked{typ: t, binding: b})
	s.mu.Unlock()
}

// Bind validates and binds fn on t and tracks the binding.
func (s *Subscriptions) Bind(t *Type, fn any) (Binding, error) {
	b, err := t.Bind(fn)
	if err != nil {
		return Binding{}, err
	}
	s.Add(t, b)
	return b, nil
}

// BindFunc binds fn on t and tracks the binding.
func (s *Subscriptions) BindFunc(t *Type, fn Listener) Binding {
	b := t.BindFunc(fn)
	s.Add(t, b)
	return b
}

// Len returns the number of tracked bindings.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tracked)
}

// Clear unbinds every tracked binding. Bindings already removed elsewhere are
// reported as joined ErrNotBound errors.
func (s *Subscriptions) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	tracked := s.tracked
	s.tracked = nil
	s.mu.Unlock()

	var errs []error
	for _, tr := range tracked {
		if err := tr.typ.Unbind(tr.binding); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
