package observe

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Binding is one registration of a listener on a Type. The same callback bound
// twice yields two bindings, each notified once per change.
type Binding struct {
	ID   ulid.ULID
	Name string
	fn   Listener
}

// IsZero reports whether b is the zero Binding.
func (b Binding) IsZero() bool {
	return b.fn == nil && b.ID == (ulid.ULID{})
}

func newBinding(fn Listener, source any) Binding {
	return Binding{ID: ulid.Make(), Name: funcName(source), fn: fn}
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Bind validates fn and appends it to the type's listeners.
func (t *Type) Bind(fn any) (Binding, error) {
	return t.bind(Callback{Fn: fn})
}

// BindMethod binds a method expression such as (*Logger).OnChange together
// with the receiver it should be called on.
func (t *Type) BindMethod(recv, method any) (Binding, error) {
	return t.bind(Callback{Fn: method, Receiver: recv})
}

// BindFunc appends fn. The Listener signature makes validation unnecessary.
func (t *Type) BindFunc(fn Listener) Binding {
	if t == nil || fn == nil {
		return Binding{}
	}
	b := newBinding(fn, fn)
	t.registry.append(b)
	return b
}

func (t *Type) bind(cb Callback) (Binding, error) {
	if t == nil {
		return Binding{}, ErrNotObservable
	}
	fn, err := Validate(cb)
	if err != nil {
		return Binding{}, fmt.Errorf("bind %s: %w", t.name, err)
	}
	b := newBinding(fn, cb.Fn)
	t.registry.append(b)
	return b, nil
}

// Unbind removes b. It fails with ErrNotBound when b was never bound to this
// type or was already removed.
func (t *Type) Unbind(b Binding) error {
	if t == nil {
		return ErrNotObservable
	}
	if err := t.registry.remove(b.ID); err != nil {
		return fmt.Errorf("unbind %s from %s: %w", b.Name, t.name, err)
	}
	return nil
}

// Listeners returns the bound listeners in notification order.
func (t *Type) Listeners() []Binding {
	if t == nil {
		return nil
	}
	return t.registry.snapshot()
}

// HasListeners reports whether any listener is bound.
func (t *Type) HasListeners() bool {
	if t == nil {
		return false
	}
	return !t.registry.empty()
}

func (t *Type) notify(inst *Instance, field string, old, value any) error {
	for _, b := range t.registry.snapshot() {
		if err := b.fn(inst, field, old, value); err != nil {
			return fmt.Errorf("%s.%s listener %s: %w", t.name, field, b.Name, err)
		}
	}
	return nil
}

func typeOf(target any) (*Type, error) {
	switch v := target.(type) {
	case *Type:
		if v != nil {
			return v, nil
		}
	case *Instance:
		return nil, ErrCannotInvokeOnInstance
	}
	return nil, fmt.Errorf("%w: %T", ErrNotObservable, target)
}

// Bind binds fn to target, which must be a *Type.
func Bind(target, fn any) (Binding, error) {
	t, err := typeOf(target)
	if err != nil {
		return Binding{}, err
	}
	return t.Bind(fn)
}

// Unbind removes b from target, which must be a *Type.
func Unbind(target any, b Binding) error {
	t, err := typeOf(target)
	if err != nil {
		return err
	}
	return t.Unbind(b)
}

// Listeners returns target's listeners; target must be a *Type.
func Listeners(target any) ([]Binding, error) {
	t, err := typeOf(target)
	if err != nil {
		return nil, err
	}
	return t.Listeners(), nil
}

// HasListeners reports whether target has listeners; target must be a *Type.
func HasListeners(target any) (bool, error) {
	t, err := typeOf(target)
	if err != nil {
		return false, err
	}
	return t.HasListeners(), nil
}
