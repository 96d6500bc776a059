package observe

import "fmt"

// ObservedField intercepts reads and writes of one observed attribute. It holds
// no per-instance state; values live in each Instance.
type ObservedField struct {
	name  string
	owner *Type
}

// Name returns the attribute name.
func (f *ObservedField) Name() string { return f.name }

// Owner returns the type the field belongs to.
func (f *ObservedField) Owner() *Type { return f.owner }

// Get returns the stored value, or Unset if nothing was ever stored.
// Unlike Set, Get does not report ErrForeignInstance: reading a nil instance
// or one of another type also yields Unset.
func (f *ObservedField) Get(inst *Instance) any {
	if inst == nil || inst.typ != f.owner {
		return Unset
	}
	return inst.load(f.name)
}

// Set stores v and notifies the owner's listeners in bind order with the old
// and new value. Writing a value equal to the stored one does nothing.
//
// The first listener error is returned; later listeners are skipped and the
// new value stays stored.
func (f *ObservedField) Set(inst *Instance, v any) error {
	if inst == nil {
		return fmt.Errorf("%w: nil instance", ErrForeignInstance)
	}
	if inst.typ != f.owner {
		return fmt.Errorf("%w: %s.%s written on %s", ErrForeignInstance, f.owner.name, f.name, inst.typ.name)
	}
	old, changed := inst.swap(f.name, v, f.owner.equal)
	if !changed {
		return nil
	}
	return f.owner.notify(inst, f.name, old, v)
}
