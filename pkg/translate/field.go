package translate

import (
	"strings"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// AnyRef is the sentinel definition name that maps to the untyped type.
const AnyRef = "x-any"

// DefaultTable maps reference names onto target type names before falling
// back to the bare reference name.
var DefaultTable = map[string]string{
	AnyRef: "any",
}

// FieldTranslator maps one raw field onto its typed output. required reports
// whether the owning model lists the field's key in its required set. self is
// the translator active for the run: nested items are translated by calling
// self, so an override that delegates to Field still sees every item field.
// A nil self means the translator recurses into itself.
type FieldTranslator func(field schema.Field, required bool, self FieldTranslator) (schema.FieldOutput, error)

// Field is the built-in translator backed by DefaultTable.
func Field(field schema.Field, required bool, self FieldTranslator) (schema.FieldOutput, error) {
	return builtin(field, required, self)
}

var builtin = New(DefaultTable)

// Translate runs fn as the active translator for field. A nil fn selects
// Field.
func Translate(fn FieldTranslator, field schema.Field, required bool) (schema.FieldOutput, error) {
	if fn == nil {
		fn = Field
	}
	return fn(field, required, fn)
}

// New builds a translator applying the built-in rules with a caller supplied
// reference table. A nil table disables reference renaming.
func New(table map[string]string) FieldTranslator {
	lookup := make(map[string]string, len(table))
	for name, target := range table {
		lookup[name] = target
	}

	var translate FieldTranslator
	translate = func(field schema.Field, required bool, self FieldTranslator) (schema.FieldOutput, error) {
		if self == nil {
			self = translate
		}
		out := schema.FieldOutput{
			Type:     field.Type,
			Ref:      field.Ref,
			Format:   field.Format,
			Required: required,
		}

		switch {
		case field.IsArray():
			// required belongs to the outer field, the item type only
			// contributes its type name.
			inner, err := self(*field.Items, required, self)
			if err != nil {
				return schema.FieldOutput{}, err
			}
			out.Type = ArrayOf(inner.Type)
		case isDate(field):
			out.Type = "Date"
		case field.Ref != "":
			name, err := RefName(field.Ref)
			if err != nil {
				return schema.FieldOutput{}, err
			}
			if mapped, ok := lookup[name]; ok {
				out.Type = mapped
			} else {
				out.Type = name
			}
		}
		return out, nil
	}
	return translate
}

// ArrayOf spells the container type for an item type.
func ArrayOf(inner string) string {
	return "Array<" + inner + ">"
}

// RefName extracts the trailing path segment of a reference, e.g. "Order"
// from "#/definitions/Order". References without a non-empty segment after a
// "/" are rejected with ErrMalformedRef.
func RefName(ref string) (string, error) {
	idx := strings.LastIndex(ref, "/")
	if idx < 0 || idx == len(ref)-1 {
		return "", &RefError{Ref: ref}
	}
	return ref[idx+1:], nil
}

func isDate(field schema.Field) bool {
	if field.Type != "string" {
		return false
	}
	return field.Format == "date" || field.Format == "date-time"
}
