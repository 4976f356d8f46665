package translate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

func TestSchemaMarksRequiredKeys(t *testing.T) {
	t.Parallel()

	def := schema.Definition{
		Properties: map[string]schema.Field{
			"id":        {Type: "number"},
			"createdAt": {Type: "string", Format: "date-time"},
			"owner":     {Ref: "#/definitions/User"},
			"tags":      {Type: "array", Items: &schema.Field{Type: "string"}},
		},
		Required: []string{"id", "owner"},
	}

	got, err := Schema(def, nil)
	if err != nil {
		t.Fatalf("translate schema: %v", err)
	}

	want := schema.ModelSchema{
		"id":        {Type: "number", Required: true},
		"createdAt": {Type: "Date", Format: "date-time"},
		"owner":     {Type: "User", Ref: "#/definitions/User", Required: true},
		"tags":      {Type: "Array<string>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaWithoutRequiredSet(t *testing.T) {
	t.Parallel()

	got, err := Schema(schema.Definition{Properties: map[string]schema.Field{
		"a": {Type: "string"},
		"b": {Type: "boolean"},
	}}, Field)
	if err != nil {
		t.Fatalf("translate schema: %v", err)
	}
	for key, field := range got {
		if field.Required {
			t.Fatalf("field %q should not be required", key)
		}
	}
}

func TestSchemaEmptyProperties(t *testing.T) {
	t.Parallel()

	got, err := Schema(schema.Definition{Required: []string{"ghost"}}, nil)
	if err != nil {
		t.Fatalf("translate schema: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty model schema, got %v", got)
	}
}

func TestSchemaCallsConfiguredTranslator(t *testing.T) {
	t.Parallel()

	calls := map[string]bool{}
	custom := func(field schema.Field, required bool, _ FieldTranslator) (schema.FieldOutput, error) {
		calls[field.Type+field.Ref] = required
		return schema.FieldOutput{Type: "custom", Required: required}, nil
	}

	got, err := Schema(schema.Definition{
		Properties: map[string]schema.Field{
			"owner": {Ref: "#/definitions/User"},
			"name":  {Type: "string"},
		},
		Required: []string{"name"},
	}, custom)
	if err != nil {
		t.Fatalf("translate schema: %v", err)
	}

	want := map[string]bool{"#/definitions/User": false, "string": true}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("translator calls mismatch (-want +got):\n%s", diff)
	}
	if got["owner"].Type != "custom" {
		t.Fatalf("expected custom translator output, got %+v", got["owner"])
	}
}

func TestSchemaWrapsFieldErrors(t *testing.T) {
	t.Parallel()

	_, err := Schema(schema.Definition{Properties: map[string]schema.Field{
		"broken": {Ref: "NoSlash"},
	}}, nil)

	var translateErr *Error
	if !errors.As(err, &translateErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if translateErr.Field != "broken" {
		t.Fatalf("expected field name in error, got %q", translateErr.Field)
	}
	if !errors.Is(err, ErrMalformedRef) {
		t.Fatalf("expected wrapped ErrMalformedRef, got %v", err)
	}
}

func TestSchemaNestedItemsUseConfiguredTranslator(t *testing.T) {
	t.Parallel()

	override := func(field schema.Field, required bool, self FieldTranslator) (schema.FieldOutput, error) {
		if field.Ref != "" {
			return schema.FieldOutput{Type: "Ref", Ref: field.Ref, Required: required}, nil
		}
		return Field(field, required, self)
	}

	got, err := Schema(schema.Definition{Properties: map[string]schema.Field{
		"one":  {Ref: "#/definitions/Order"},
		"many": {Type: "array", Items: &schema.Field{Ref: "#/definitions/Order"}},
	}}, override)
	if err != nil {
		t.Fatalf("translate schema: %v", err)
	}
	if got["one"].Type != "Ref" || got["many"].Type != "Array<Ref>" {
		t.Fatalf("expected override to reach items, got one=%q many=%q", got["one"].Type, got["many"].Type)
	}
}
