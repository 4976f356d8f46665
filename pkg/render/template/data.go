package template

import "github.com/goliatone/go-modelgen/pkg/schema"

const (
	// ModelNameKey is the context key holding the model name.
	ModelNameKey = "modelName"
	// ModelSchemaKey is the context key holding the translated schema.
	ModelSchemaKey = "modelSchema"
)

// Data is the render context for a single model. Values carries the static
// template data configured for the run.
type Data struct {
	ModelName   string
	ModelSchema schema.ModelSchema
	Values      map[string]any
}

// NewData merges the static values with the model specific entries. The
// values map is copied so hooks can mutate the result freely.
func NewData(modelName string, modelSchema schema.ModelSchema, values map[string]any) Data {
	cloned := make(map[string]any, len(values))
	for key, value := range values {
		cloned[key] = value
	}
	return Data{
		ModelName:   modelName,
		ModelSchema: modelSchema,
		Values:      cloned,
	}
}

// Value returns a static value by key.
func (d Data) Value(key string) (any, bool) {
	value, ok := d.Values[key]
	return value, ok
}

// Context flattens the data into a single map. modelName and modelSchema
// always win over static values with the same key.
func (d Data) Context() map[string]any {
	out := make(map[string]any, len(d.Values)+2)
	for key, value := range d.Values {
		out[key] = value
	}
	out[ModelNameKey] = d.ModelName
	out[ModelSchemaKey] = d.ModelSchema
	return out
}
