package observe

import (
	"errors"
	"fmt"
	"testing"
)

type watcher struct {
	fields []string
}

func (w *watcher) OnChange(inst *Instance, field string, old, new any) {
	w.fields = append(w.fields, field)
}

func TestValidate_RejectsWrongArity(t *testing.T) {
	point := newPoint(t)
	three := func(a *Instance, b string, c any) {}
	six := func(a *Instance, b string, c, d, e, f any) {}

	for _, fn := range []any{three, six} {
		if _, err := point.Bind(fn); !errors.Is(err, ErrWrongArgumentCount) {
			t.Fatalf("expected ErrWrongArgumentCount for %T, got %v", fn, err)
		}
	}
	if point.HasListeners() {
		t.Fatalf("expected rejected binds to leave the registry empty")
	}
}

func TestValidate_RejectsFiveWithoutReceiver(t *testing.T) {
	w := &watcher{}
	if _, err := Validate(Callback{Fn: (*watcher).OnChange}); !errors.Is(err, ErrWrongArgumentCount) {
		t.Fatalf("expected ErrWrongArgumentCount, got %v", err)
	}
	if _, err := Validate(Callback{Fn: func(*Instance, string, any, any) {}, Receiver: w}); !errors.Is(err, ErrWrongArgumentCount) {
		t.Fatalf("expected ErrWrongArgumentCount for four parameters with a receiver, got %v", err)
	}
}

func TestValidate_NotCallable(t *testing.T) {
	var nilListener Listener
	for _, fn := range []any{nil, 42, nilListener} {
		if _, err := Validate(Callback{Fn: fn}); !errors.Is(err, ErrNotCallable) {
			t.Fatalf("expected ErrNotCallable for %v, got %v", fn, err)
		}
	}
}

func TestValidate_RejectsVariadicAndBadTypes(t *testing.T) {
	cases := map[string]struct {
		fn   any
		want error
	}{
		"variadic":      {fn: func(...any) {}, want: ErrWrongArgumentCount},
		"int field":     {fn: func(*Instance, int, any, any) {}, want: ErrBadParameter},
		"wrong inst":    {fn: func(string, string, any, any) {}, want: ErrBadParameter},
		"extra results": {fn: func(*Instance, string, any, any) (int, error) { return 0, nil }, want: ErrBadParameter},
	}
	for name, tc := range cases {
		if _, err := Validate(Callback{Fn: tc.fn}); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
		}
	}
}

func TestValidate_MethodExpression(t *testing.T) {
	point := newPoint(t)
	w := &watcher{}
	if _, err := point.BindMethod(w, (*watcher).OnChange); err != nil {
		t.Fatalf("expected method expression to bind, got %v", err)
	}
	if _, err := point.BindMethod("nope", (*watcher).OnChange); !errors.Is(err, ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter for mismatched receiver, got %v", err)
	}

	mustSet(t, point.MustNew(), "y", 4)
	if len(w.fields) != 1 || w.fields[0] != "y" {
		t.Fatalf("expected method to see y, got %v", w.fields)
	}
}

func TestValidate_MethodValueIsFourParameters(t *testing.T) {
	point := newPoint(t)
	w := &watcher{}
	if _, err := point.Bind(w.OnChange); err != nil {
		t.Fatalf("expected method value to bind, got %v", err)
	}
	mustSet(t, point.MustNew(), "x", 1)
	if len(w.fields) != 1 {
		t.Fatalf("expected 1 call, got %d", len(w.fields))
	}
}

func TestValidate_RejectsTypedValuesAtBind(t *testing.T) {
	point := newPoint(t)
	typed := []any{
		func(_ *Instance, _ string, old, new int) {},
		func(_ *Instance, _ string, old, new fmt.Stringer) {},
		func(_ *Instance, _ string, old any, new string) error { return nil },
	}
	for _, fn := range typed {
		if _, err := point.Bind(fn); !errors.Is(err, ErrBadParameter) {
			t.Fatalf("expected ErrBadParameter binding %T, got %v", fn, err)
		}
	}
	if point.HasListeners() {
		t.Fatalf("expected rejected binds to leave the registry empty")
	}
	if err := point.MustNew().Set("x", 1); err != nil {
		t.Fatalf("expected write without listeners to succeed, got %v", err)
	}
}

type fieldName string

func TestValidate_ReflectiveCallbackReceivesValues(t *testing.T) {
	point := newPoint(t)
	var got []any
	_, err := point.Bind(func(_ *Instance, field fieldName, old, new any) {
		got = append(got, field, old, new)
	})
	if err != nil {
		t.Fatalf("expected named string field parameter to bind, got %v", err)
	}

	p := point.MustNew()
	mustSet(t, p, "x", 3)
	mustSet(t, p, "x", nil)
	if len(got) != 6 || got[0] != fieldName("x") || !IsUnset(got[1]) || got[2] != 3 || got[4] != 3 || got[5] != nil {
		t.Fatalf("unexpected delivered values: %v", got)
	}
}

func TestValidate_ErrorReturningCallback(t *testing.T) {
	point := newPoint(t)
	boom := errors.New("boom")
	if _, err := point.Bind(func(*Instance, string, any, any) error { return boom }); err != nil {
		t.Fatalf("expected bind to succeed, got %v", err)
	}
	if err := point.MustNew().Set("x", 1); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
