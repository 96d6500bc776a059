package schema

import (
	"fmt"
	"slices"

	"github.com/odvcencio/observed/observe"
)

// Catalog holds the types built from one document.
type Catalog struct {
	names []string
	types map[string]*observe.Type
}

// Compile builds every type in doc in declaration order.
func Compile(doc *Document, opts ...observe.Option) (*Catalog, error) {
	cat := &Catalog{types: make(map[string]*observe.Type, len(doc.Types))}
	for _, decl := range doc.Types {
		if _, dup := cat.types[decl.Name]; dup {
			return nil, fmt.Errorf("%w: type %s declared twice", ErrInvalidSchema, decl.Name)
		}
		attrs := make([]observe.Attr, 0, len(decl.Fields))
		for _, f := range decl.Fields {
			a, err := f.Attr()
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", decl.Name, err)
			}
			attrs = append(attrs, a)
		}

		var (
			typ *observe.Type
			err error
		)
		if decl.Extends != "" {
			parent, ok := cat.types[decl.Extends]
			if !ok {
				return nil, fmt.Errorf("%w: %s extends %s", ErrUnknownType, decl.Name, decl.Extends)
			}
			typ, err = observe.Extend(parent, decl.Name, attrs, opts...)
		} else {
			typ, err = observe.Build(decl.Name, attrs, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
		}
		cat.types[decl.Name] = typ
		cat.names = append(cat.names, decl.Name)
	}
	return cat, nil
}

// Names returns the type names in declaration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Lookup returns the named type.
func (c *Catalog) Lookup(name string) (*observe.Type, error) {
	typ, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return typ, nil
}
