package observe

import "fmt"

// Field is a typed view of an observed field.
type Field[T any] struct {
	field *ObservedField
}

// FieldOf returns a typed accessor for the observed field name of t.
func FieldOf[T any](t *Type, name string) (Field[T], error) {
	f, ok := t.Field(name)
	if !ok {
		return Field[T]{}, fmt.Errorf("%w: %s.%s is not observed", ErrUnknownAttribute, t.name, name)
	}
	return Field[T]{field: f}, nil
}

// MustFieldOf is like FieldOf but panics on error.
func MustFieldOf[T any](t *Type, name string) Field[T] {
	f, err := FieldOf[T](t, name)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the attribute name.
func (f Field[T]) Name() string {
	if f.field == nil {
		return ""
	}
	return f.field.name
}

// Get returns the stored value. ok is false when the field is unset or holds
// a value that is not a T.
func (f Field[T]) Get(inst *Instance) (value T, ok bool) {
	if f.field == nil {
		return value, false
	}
	value, ok = f.field.Get(inst).(T)
	return value, ok
}

// Set stores value and notifies listeners if it changed.
func (f Field[T]) Set(inst *Instance, value T) error {
	if f.field == nil {
		return ErrUnknownAttribute
	}
	return f.field.Set(inst, value)
}

// Update replaces the value using fn. An unset field is passed as the zero T.
// fn runs outside the instance lock; Update is not atomic across goroutines.
func (f Field[T]) Update(inst *Instance, fn func(T) T) error {
	if fn == nil {
		return nil
	}
	current, _ := f.Get(inst)
	return f.Set(inst, fn(current))
}
