package observe

import "testing"

type change struct {
	Field string
	Old   any
	New   any
}

type recorder struct {
	changes   []change
	instances []*Instance
}

func (r *recorder) listen(inst *Instance, field string, old, new any) error {
	r.changes = append(r.changes, change{Field: field, Old: old, New: new})
	r.instances = append(r.instances, inst)
	return nil
}

func newPoint(t *testing.T) *Type {
	t.Helper()
	typ, err := Build("Point", []Attr{
		{Name: "x", Value: Unset},
		{Name: "y", Value: Unset},
		{Name: "label", Value: "origin"},
	})
	if err != nil {
		t.Fatalf("expected Point to build, got %v", err)
	}
	return typ
}

func mustSet(t *testing.T, inst *Instance, name string, v any) {
	t.Helper()
	if err := inst.Set(name, v); err != nil {
		t.Fatalf("expected set %s=%v to succeed, got %v", name, v, err)
	}
}

func mustGet(t *testing.T, inst *Instance, name string) any {
	t.Helper()
	v, err := inst.Get(name)
	if err != nil {
		t.Fatalf("expected get %s to succeed, got %v", name, err)
	}
	return v
}
