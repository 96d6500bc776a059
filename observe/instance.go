package observe

import (
	"fmt"
	"maps"
	"sync"
)

// Instance is a value of an observable Type. Its storage is private to it.
type Instance struct {
	typ    *Type
	mu     sync.Mutex
	values map[string]any
}

// Type returns the instance's type.
func (i *Instance) Type() *Type {
	if i == nil {
		return nil
	}
	return i.typ
}

// Get returns the current value of the named attribute.
func (i *Instance) Get(name string) (any, error) {
	if i == nil {
		return nil, fmt.Errorf("%w: nil instance", ErrUnknownAttribute)
	}
	if !i.typ.declared(name) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, i.typ.name, name)
	}
	return i.load(name), nil
}

// Set writes the named attribute. Observed fields go through their
// ObservedField; ordinary attributes are stored without notification.
func (i *Instance) Set(name string, v any) error {
	if i == nil {
		return fmt.Errorf("%w: nil instance", ErrForeignInstance)
	}
	if f, ok := i.typ.fields[name]; ok {
		return f.Set(i, v)
	}
	if !i.typ.declared(name) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, i.typ.name, name)
	}
	i.mu.Lock()
	i.values[name] = v
	i.mu.Unlock()
	return nil
}

// Values returns a copy of every attribute value.
func (i *Instance) Values() map[string]any {
	if i == nil {
		return nil
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return maps.Clone(i.values)
}

func (i *Instance) load(name string) any {
	i.mu.Lock()
	defer i.mu.Unlock()
	v, ok := i.values[name]
	if !ok {
		return Unset
	}
	return v
}

func (i *Instance) swap(name string, v any, equal EqualFunc) (old any, changed bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	old, ok := i.values[name]
	if !ok {
		old = Unset
	}
	if equal(old, v) {
		return old, false
	}
	i.values[name] = v
	return old, true
}
