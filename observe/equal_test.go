package observe

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{a: 1, b: 1.0, want: true},
		{a: 1, b: int64(1), want: true},
		{a: uint8(7), b: 7, want: true},
		{a: -1, b: uint(1), want: false},
		{a: float32(0.5), b: 0.5, want: true},
		{a: 1, b: 2.5, want: false},
		{a: 1, b: "1", want: false},
		{a: []int{1}, b: []int{1}, want: true},
		{a: nil, b: nil, want: true},
		{a: Unset, b: nil, want: false},
		{a: Unset, b: Unset, want: true},
	}
	for _, tc := range cases {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Fatalf("Equal(%#v, %#v): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestObservedField_NumericWritesCompareByValue(t *testing.T) {
	point := newPoint(t)
	p := point.MustNew()
	calls := 0
	point.BindFunc(func(*Instance, string, any, any) error {
		calls++
		return nil
	})

	mustSet(t, p, "x", 1)
	mustSet(t, p, "x", 1.0)
	mustSet(t, p, "x", int64(1))
	if calls != 1 {
		t.Fatalf("expected numerically equal writes to be no-ops, got %d calls", calls)
	}
	if got := mustGet(t, p, "x"); got != 1 {
		t.Fatalf("expected the first stored value to be kept, got %#v", got)
	}
}
