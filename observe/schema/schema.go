// Package schema declares observable types in YAML.
//
//	types:
//	  - name: Point
//	    fields:
//	      - name: x          # no value: observed
//	      - name: y
//	        value: !unset    # explicit sentinel: observed
//	      - name: label
//	        value: origin    # ordinary attribute
//	  - name: Point3
//	    extends: Point
//	    fields:
//	      - name: z
//
// A type may only extend a type declared before it.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/observed/observe"
)

// UnsetTag marks a field value as the observe.Unset sentinel.
const UnsetTag = "!unset"

// Errors returned while loading and compiling a schema.
var (
	ErrInvalidSchema = errors.New("invalid schema")
	ErrUnknownType   = errors.New("unknown type")
)

// Document is the decoded YAML form.
type Document struct {
	Types []TypeDecl `yaml:"types" validate:"required,min=1,dive"`
}

// TypeDecl declares one type.
type TypeDecl struct {
	Name    string      `yaml:"name" validate:"required"`
	Extends string      `yaml:"extends,omitempty"`
	Fields  []FieldDecl `yaml:"fields" validate:"dive"`
}

// FieldDecl declares one attribute. A missing value, or one tagged !unset,
// makes the attribute observed.
type FieldDecl struct {
	Name  string    `yaml:"name" validate:"required"`
	Value yaml.Node `yaml:"value,omitempty"`
}

// Observed reports whether the field is declared with the Unset sentinel.
func (f FieldDecl) Observed() bool {
	return f.Value.Kind == 0 || f.Value.Tag == UnsetTag
}

// Attr converts the declaration to an observe.Attr.
func (f FieldDecl) Attr() (observe.Attr, error) {
	if f.Observed() {
		return observe.Attr{Name: f.Name, Value: observe.Unset}, nil
	}
	var v any
	if err := f.Value.Decode(&v); err != nil {
		return observe.Attr{}, fmt.Errorf("%w: field %s: %v", ErrInvalidSchema, f.Name, err)
	}
	return observe.Attr{Name: f.Name, Value: v}, nil
}

var validate = validator.New()

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &doc, nil
}

// Load reads a schema from r and builds its types.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Compile(doc)
}

// LoadFile reads the schema at path and builds its types.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
