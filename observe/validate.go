package observe

import (
	"fmt"
	"reflect"
)

// Listener is notified after an observed field of inst changes from old to new.
// A non-nil error stops delivery to the remaining listeners and is returned
// to the writer.
type Listener func(inst *Instance, field string, old, new any) error

// Callback is a candidate listener. Fn takes (instance, field, old, new), or
// when Receiver is set, a method expression taking the receiver first.
type Callback struct {
	Fn       any
	Receiver any
}

var (
	instanceType = reflect.TypeOf((*Instance)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// Validate checks the parameter shape of cb once and returns a Listener that
// calls it. Shapes other than four parameters, or five with a receiver, are
// rejected with ErrWrongArgumentCount. The old and new parameters must be
// declared as any; use Field[T] for typed access.
func Validate(cb Callback) (Listener, error) {
	if cb.Receiver == nil {
		switch fn := cb.Fn.(type) {
		case Listener:
			if fn != nil {
				return fn, nil
			}
		case func(*Instance, string, any, any) error:
			if fn != nil {
				return fn, nil
			}
		case func(*Instance, string, any, any):
			if fn != nil {
				return func(inst *Instance, field string, old, new any) error {
					fn(inst, field, old, new)
					return nil
				}, nil
			}
		}
	}

	v := reflect.ValueOf(cb.Fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, cb.Fn)
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic %s", ErrWrongArgumentCount, t)
	}

	var recv reflect.Value
	offset := 0
	switch {
	case cb.Receiver == nil && t.NumIn() == 4:
	case cb.Receiver != nil && t.NumIn() == 5:
		recv = reflect.ValueOf(cb.Receiver)
		if !recv.Type().AssignableTo(t.In(0)) {
			return nil, fmt.Errorf("%w: receiver %s cannot be used as %s", ErrBadParameter, recv.Type(), t.In(0))
		}
		offset = 1
	case cb.Receiver != nil:
		return nil, fmt.Errorf("%w: method takes %d parameters, want 5", ErrWrongArgumentCount, t.NumIn())
	default:
		return nil, fmt.Errorf("%w: function takes %d parameters, want 4", ErrWrongArgumentCount, t.NumIn())
	}

	if !instanceType.AssignableTo(t.In(offset)) {
		return nil, fmt.Errorf("%w: instance parameter is %s", ErrBadParameter, t.In(offset))
	}
	fieldType := t.In(offset + 1)
	if fieldType.Kind() != reflect.String {
		return nil, fmt.Errorf("%w: field parameter is %s", ErrBadParameter, fieldType)
	}
	switch {
	case t.NumOut() == 0:
	case t.NumOut() == 1 && t.Out(0) == errorType:
	default:
		return nil, fmt.Errorf("%w: listener may only return error, got %s", ErrBadParameter, t)
	}

	for i := offset + 2; i < offset+4; i++ {
		if pt := t.In(i); pt.Kind() != reflect.Interface || pt.NumMethod() != 0 {
			return nil, fmt.Errorf("%w: old and new values must be any, got %s", ErrBadParameter, pt)
		}
	}

	return func(inst *Instance, field string, old, new any) error {
		args := make([]reflect.Value, 0, t.NumIn())
		if recv.IsValid() {
			args = append(args, recv)
		}
		args = append(args,
			reflect.ValueOf(inst),
			reflect.ValueOf(field).Convert(fieldType),
			anyValue(t.In(offset+2), old),
			anyValue(t.In(offset+3), new),
		)
		out := v.Call(args)
		if len(out) == 1 && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
		return nil
	}, nil
}

func anyValue(pt reflect.Type, val any) reflect.Value {
	if val == nil {
		return reflect.Zero(pt)
	}
	return reflect.ValueOf(val)
}
