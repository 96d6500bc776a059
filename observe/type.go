// Package observe turns declared attributes into observed fields whose writes
// are reported to listeners bound on the owning type.
//
// Attributes declared with the Unset sentinel as their initial value become
// observed when the type is built. Every instance keeps its own values, while
// all instances of a type notify through the type's single listener list.
//
//	point := observe.MustBuild("Point", []observe.Attr{
//		{Name: "x", Value: observe.Unset},
//		{Name: "y", Value: observe.Unset},
//	})
//	point.BindFunc(func(p *observe.Instance, field string, old, new any) error {
//		fmt.Println(field, old, "->", new)
//		return nil
//	})
//	p := point.MustNew()
//	p.Set("x", 10)
package observe

import (
	"fmt"
	"slices"
)

// Attr declares an attribute and its initial value.
type Attr struct {
	Name  string
	Value any
}

// Constructor initializes a new instance. Values assigned through Init are
// stored without notifying listeners.
type Constructor func(init *Init, args ...any) error

// Option configures a Type at build time.
type Option func(*Type)

// WithConstructor runs ctor for every new instance after its storage is
// seeded with the declared values.
func WithConstructor(ctor Constructor) Option {
	return func(t *Type) {
		t.ctor = ctor
	}
}

// WithEqual replaces the equality check that suppresses no-op writes.
func WithEqual(fn EqualFunc) Option {
	return func(t *Type) {
		if fn != nil {
			t.equal = fn
		}
	}
}

// Type is an observable type: an attribute table, the observed fields found in
// it, and the listener registry shared by every instance.
type Type struct {
	name     string
	parent   *Type
	attrs    []Attr
	fields   map[string]*ObservedField
	observed []string
	equal    EqualFunc
	ctor     Constructor
	registry registry
}

// Build scans attrs once and returns the observable type. Attributes whose
// value is Unset become observed fields; the rest stay ordinary attributes.
func Build(name string, attrs []Attr, opts ...Option) (*Type, error) {
	return build(nil, name, attrs, opts)
}

// MustBuild is like Build but panics on error.
func MustBuild(name string, attrs []Attr, opts ...Option) *Type {
	t, err := Build(name, attrs, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Extend builds a type that starts from parent's declarations. attrs may
// redeclare inherited names. The new type gets its own listener registry and
// inherits the parent's constructor and equality unless overridden.
func Extend(parent *Type, name string, attrs []Attr, opts ...Option) (*Type, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: %s extends a nil type", ErrInvalidDeclaration, name)
	}
	return build(parent, name, attrs, opts)
}

func build(parent *Type, name string, attrs []Attr, opts []Option) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidDeclaration)
	}
	t := &Type{
		name:   name,
		parent: parent,
		fields: make(map[string]*ObservedField),
		equal:  Equal,
	}
	if parent != nil {
		t.attrs = slices.Clone(parent.attrs)
		t.equal = parent.equal
		t.ctor = parent.ctor
	}

	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if a.Name == "" {
			return nil, fmt.Errorf("%w: %s has an attribute without a name", ErrInvalidDeclaration, name)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("%w: %s declares %q twice", ErrInvalidDeclaration, name, a.Name)
		}
		seen[a.Name] = true
		if i := slices.IndexFunc(t.attrs, func(x Attr) bool { return x.Name == a.Name }); i >= 0 {
			t.attrs[i] = a
			continue
		}
		t.attrs = append(t.attrs, a)
	}

	for _, a := range t.attrs {
		if !IsUnset(a.Value) {
			continue
		}
		t.fields[a.Name] = &ObservedField{name: a.Name, owner: t}
		t.observed = append(t.observed, a.Name)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

// Name returns the type name.
func (t *Type) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Parent returns the type this one extends, or nil.
func (t *Type) Parent() *Type {
	if t == nil {
		return nil
	}
	return t.parent
}

// Attributes returns every declared attribute in declaration order.
func (t *Type) Attributes() []Attr {
	if t == nil {
		return nil
	}
	return slices.Clone(t.attrs)
}

// ObservedFields returns the names of the observed fields in declaration order.
func (t *Type) ObservedFields() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.observed)
}

// Field returns the observed field called name.
func (t *Type) Field(name string) (*ObservedField, bool) {
	if t == nil {
		return nil, false
	}
	f, ok := t.fields[name]
	return f, ok
}

// IsObserved reports whether name is an observed field.
func (t *Type) IsObserved(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.fields[name]
	return ok
}

func (t *Type) declared(name string) bool {
	return slices.ContainsFunc(t.attrs, func(a Attr) bool { return a.Name == name })
}

// New creates an instance. Observed fields start as Unset, ordinary attributes
// as their declared value; then the constructor, if any, runs with args.
func (t *Type) New(args ...any) (*Instance, error) {
	if t == nil {
		return nil, ErrNotObservable
	}
	inst := &Instance{typ: t, values: make(map[string]any, len(t.attrs))}
	for _, a := range t.attrs {
		inst.values[a.Name] = a.Value
	}
	if t.ctor != nil {
		if err := t.ctor(&Init{inst: inst}, args...); err != nil {
			return nil, fmt.Errorf("construct %s: %w", t.name, err)
		}
	}
	return inst, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(args ...any) *Instance {
	inst, err := t.New(args...)
	if err != nil {
		panic(err)
	}
	return inst
}

// Init gives a Constructor direct access to the storage of the instance
// being built.
type Init struct {
	inst *Instance
}

// Instance returns the instance under construction.
func (i *Init) Instance() *Instance { return i.inst }

// Assign stores v under name without notifying listeners.
func (i *Init) Assign(name string, v any) error {
	if !i.inst.typ.declared(name) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, i.inst.typ.name, name)
	}
	i.inst.mu.Lock()
	i.inst.values[name] = v
	i.inst.mu.Unlock()
	return nil
}
