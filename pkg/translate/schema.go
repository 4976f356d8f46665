package translate

import "github.com/goliatone/go-modelgen/pkg/schema"

// Schema applies fn to every property of def and assembles the typed model
// schema. fn is also the translator nested items recurse through; a nil fn
// falls back to the built-in Field translator. The first failing property
// aborts translation.
func Schema(def schema.Definition, fn FieldTranslator) (schema.ModelSchema, error) {
	out := make(schema.ModelSchema, len(def.Properties))
	for key, field := range def.Properties {
		translated, err := Translate(fn, field.Clone(), def.IsRequired(key))
		if err != nil {
			return nil, &Error{Field: key, Err: err}
		}
		out[key] = translated
	}
	return out, nil
}
