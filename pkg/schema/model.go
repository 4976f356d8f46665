package schema

import (
	"slices"
	"sort"
)

// Field is a single model property as declared in the input document. Only
// the {type, $ref, format, items} shape is understood; other keys are ignored
// on decode.
type Field struct {
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Ref    string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Items  *Field `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsArray reports whether the field declares an item type.
func (f Field) IsArray() bool {
	return f.Items != nil
}

// Clone creates a deep copy so translators can never alias caller input.
func (f Field) Clone() Field {
	cloned := f
	if f.Items != nil {
		items := f.Items.Clone()
		cloned.Items = &items
	}
	return cloned
}

// FieldOutput is the typed descriptor handed to templates. Type may be a
// primitive name, a resolved reference name, or a container spelling such as
// Array<T>.
type FieldOutput struct {
	Type     string `json:"type" yaml:"type"`
	Ref      string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	Required bool   `json:"required" yaml:"required"`
}

// ModelSchema maps property names to their typed descriptors.
type ModelSchema map[string]FieldOutput

// Keys returns the property names sorted alphabetically.
func (m ModelSchema) Keys() []string {
	return sortedKeys(m)
}

// Definition describes one model: its properties and the keys it marks as
// mandatory.
type Definition struct {
	Properties map[string]Field `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string         `json:"required,omitempty" yaml:"required,omitempty"`
}

// IsRequired reports whether key is listed in the required set. A definition
// without a required set treats every property as optional.
func (d Definition) IsRequired(key string) bool {
	return slices.Contains(d.Required, key)
}

// Definitions is the full schema document keyed by model name.
type Definitions map[string]Definition

// Names returns the model names sorted alphabetically.
func (d Definitions) Names() []string {
	return sortedKeys(d)
}

// Results maps each model name to its rendered text.
type Results map[string]string

// Names returns the model names sorted alphabetically.
func (r Results) Names() []string {
	return sortedKeys(r)
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
