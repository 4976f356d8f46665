package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

func definitionFromSchemaRef(ref *openapi3.SchemaRef) schema.Definition {
	if ref == nil || ref.Value == nil {
		return schema.Definition{}
	}
	src := ref.Value

	def := schema.Definition{}
	if len(src.Required) > 0 {
		def.Required = append([]string(nil), src.Required...)
	}
	if len(src.Properties) > 0 {
		def.Properties = make(map[string]schema.Field, len(src.Properties))
		for name, property := range src.Properties {
			def.Properties[name] = fieldFromSchemaRef(property)
		}
	}
	return def
}

// fieldFromSchemaRef keeps references as references. kin-openapi resolves
// Value for internal refs, but following it would inline the target model
// (and loop on recursive schemas).
func fieldFromSchemaRef(ref *openapi3.SchemaRef) schema.Field {
	if ref == nil {
		return schema.Field{}
	}
	if ref.Ref != "" {
		return schema.Field{Ref: ref.Ref}
	}
	if ref.Value == nil {
		return schema.Field{}
	}

	src := ref.Value
	field := schema.Field{
		Type:   firstSchemaType(src.Type),
		Format: src.Format,
	}
	if src.Items != nil {
		items := fieldFromSchemaRef(src.Items)
		field.Items = &items
	}
	return field
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
