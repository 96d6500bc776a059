package observe

import (
	"errors"
	"testing"
)

func TestSubscriptions_Clear(t *testing.T) {
	point := newPoint(t)
	other := MustBuild("Other", []Attr{{Name: "v", Value: Unset}})
	subs := &Subscriptions{}
	calls := 0
	count := func(*Instance, string, any, any) error {
		calls++
		return nil
	}

	subs.BindFunc(point, count)
	if _, err := subs.Bind(other, count); err != nil {
		t.Fatalf("expected bind to succeed, got %v", err)
	}
	if subs.Len() != 2 {
		t.Fatalf("expected 2 tracked bindings, got %d", subs.Len())
	}

	if err := subs.Clear(); err != nil {
		t.Fatalf("expected clear to succeed, got %v", err)
	}
	if point.HasListeners() || other.HasListeners() {
		t.Fatalf("expected clear to unbind everything")
	}
	mustSet(t, point.MustNew(), "x", 1)
	if calls != 0 {
		t.Fatalf("expected no calls after clear, got %d", calls)
	}
	if err := subs.Clear(); err != nil {
		t.Fatalf("expected second clear to be a no-op, got %v", err)
	}
}

func TestSubscriptions_ClearReportsMissing(t *testing.T) {
	point := newPoint(t)
	subs := &Subscriptions{}
	b := subs.BindFunc(point, func(*Instance, string, any, any) error { return nil })
	if err := point.Unbind(b); err != nil {
		t.Fatalf("expected unbind to succeed, got %v", err)
	}

	if err := subs.Clear(); !errors.Is(err, ErrNotBound) {
		t.Fatalf("expected ErrNotBound, got %v", err)
	}
	if _, err := subs.Bind(point, func() {}); !errors.Is(err, ErrWrongArgumentCount) {
		t.Fatalf("expected ErrWrongArgumentCount, got %v", err)
	}
	if subs.Len() != 0 {
		t.Fatalf("expected rejected bind to stay untracked, got %d", subs.Len())
	}
}
