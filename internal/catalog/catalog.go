// Package catalog declares one schema per listing category. Every publish
// and edit form is the generic form controller instantiated with one of
// these schemas, instead of a bespoke near-copy per category.
package catalog

import (
	"fmt"
	"sort"

	"github.com/holidaysri/holidaysri-client/pkg/errors"
)

// FieldKind is the wire/input type of a category-specific field
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldInt    FieldKind = "int"
	FieldFloat  FieldKind = "float"
	FieldSelect FieldKind = "select"
)

// Field describes one category-specific scalar field
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Options  []string // closed choice list, FieldSelect only
	Min      float64  // numeric lower bound, FieldInt/FieldFloat
	Max      float64  // numeric upper bound; 0 means unbounded
	MaxLen   int      // text length cap; 0 means unbounded
}

// ArrayField describes a toggled-membership field (tags, services,
// payment methods, amenities) with its closed option list.
type ArrayField struct {
	Name    string
	Options []string
}

// Schema is the complete form contract for one listing category
type Schema struct {
	Slug             string // backend path segment, e.g. "babysitters-childcare"
	Title            string
	Fields           []Field
	ArrayFields      []ArrayField
	ImageCap         int  // hard slot cap: 1, 3, 4 or 5
	ImagesRequired   bool // at least one image must exist before submit
	SingleImage      bool // avatar-style single slot instead of a gallery
	ProvincesFromAPI bool // fetch the province table instead of the static one
}

// Field returns the schema field with the given name
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ArrayField returns the array field with the given name
func (s Schema) ArrayField(name string) (ArrayField, bool) {
	for _, f := range s.ArrayFields {
		if f.Name == name {
			return f, true
		}
	}
	return ArrayField{}, false
}

// Get looks up a category schema by its slug
func Get(slug string) (Schema, error) {
	s, ok := registry[slug]
	if !ok {
		return Schema{}, fmt.Errorf("category %q: %w", slug, errors.ErrNotFound)
	}
	return s, nil
}

// Slugs returns all registered category slugs in stable order
func Slugs() []string {
	out := make([]string, 0, len(registry))
	for slug := range registry {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
