package observe

import (
	"fmt"
	"sync"
)

// Derived holds a value computed from one instance's observed fields and
// recomputes it whenever one of them changes.
type Derived[T any] struct {
	mu       sync.Mutex
	inst     *Instance
	compute  func(*Instance) T
	value    T
	watch    map[string]bool
	binding  Binding
	stopped  bool
	onChange func(T)
}

// NewDerived computes an initial value and binds on inst's type. With no
// fields, every observed field of the instance is watched.
func NewDerived[T any](inst *Instance, compute func(*Instance) T, fields ...string) (*Derived[T], error) {
	if inst == nil || compute == nil {
		return nil, fmt.Errorf("%w: derived value needs an instance and a compute function", ErrInvalidDeclaration)
	}
	d := &Derived[T]{inst: inst, compute: compute}
	if len(fields) > 0 {
		d.watch = make(map[string]bool, len(fields))
		for _, name := range fields {
			if !inst.typ.IsObserved(name) {
				return nil, fmt.Errorf("%w: %s.%s is not observed", ErrUnknownAttribute, inst.typ.name, name)
			}
			d.watch[name] = true
		}
	}
	d.value = compute(inst)
	d.binding = inst.typ.BindFunc(d.changed)
	return d, nil
}

// OnChange registers fn to run after each recompute.
func (d *Derived[T]) OnChange(fn func(T)) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Get returns the current value.
func (d *Derived[T]) Get() T {
	if d == nil {
		var zero T
		return zero
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Stop unbinds the derived value from its type. Stop is idempotent.
func (d *Derived[T]) Stop() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	d.mu.Unlock()
	return d.inst.typ.Unbind(d.binding)
}

func (d *Derived[T]) changed(inst *Instance, field string, _, _ any) error {
	if inst != d.inst || (d.watch != nil && !d.watch[field]) {
		return nil
	}
	value := d.compute(inst)
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.value = value
	onChange := d.onChange
	d.mu.Unlock()
	if onChange != nil {
		onChange(value)
	}
	return nil
}
