package translate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

func TestFieldKeepsPrimitiveTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"string", "number", "integer", "boolean", "object"} {
		for _, required := range []bool{true, false} {
			got, err := Field(schema.Field{Type: typ}, required, nil)
			if err != nil {
				t.Fatalf("translate %s: %v", typ, err)
			}
			want := schema.FieldOutput{Type: typ, Required: required}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("translate %s mismatch (-want +got):\n%s", typ, diff)
			}
		}
	}
}

func TestFieldDates(t *testing.T) {
	t.Parallel()

	cases := []schema.Field{
		{Type: "string", Format: "date"},
		{Type: "string", Format: "date-time"},
		{Type: "string", Format: "date-time", Ref: "#/definitions/Order"},
	}
	for _, field := range cases {
		got, err := Field(field, false, nil)
		if err != nil {
			t.Fatalf("translate %+v: %v", field, err)
		}
		if got.Type != "Date" {
			t.Fatalf("expected Date for %+v, got %q", field, got.Type)
		}
		if got.Format != field.Format {
			t.Fatalf("expected format to be carried through, got %q", got.Format)
		}
	}

	got, err := Field(schema.Field{Type: "integer", Format: "date"}, false, nil)
	if err != nil {
		t.Fatalf("translate integer: %v", err)
	}
	if got.Type != "integer" {
		t.Fatalf("date format on non-string should keep type, got %q", got.Type)
	}
}

func TestFieldRefs(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#/definitions/Order":           "Order",
		"#/definitions/x-any":           "any",
		"#/components/schemas/ApiKey":   "ApiKey",
		"other.json#/definitions/Thing": "Thing",
	}
	for ref, want := range cases {
		got, err := Field(schema.Field{Ref: ref}, true, nil)
		if err != nil {
			t.Fatalf("translate %q: %v", ref, err)
		}
		if got.Type != want {
			t.Fatalf("ref %q: want %q, got %q", ref, want, got.Type)
		}
		if got.Ref != ref || !got.Required {
			t.Fatalf("ref %q: expected ref and required to be carried, got %+v", ref, got)
		}
	}
}

func TestFieldMalformedRef(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"Order", "#/definitions/"} {
		_, err := Field(schema.Field{Ref: ref}, false, nil)
		if !errors.Is(err, ErrMalformedRef) {
			t.Fatalf("ref %q: expected ErrMalformedRef, got %v", ref, err)
		}
		var refErr *RefError
		if !errors.As(err, &refErr) || refErr.Ref != ref {
			t.Fatalf("ref %q: expected RefError, got %v", ref, err)
		}
	}
}

func TestFieldArraysNestInnermostFirst(t *testing.T) {
	t.Parallel()

	field := schema.Field{
		Type: "array",
		Items: &schema.Field{
			Type: "array",
			Items: &schema.Field{
				Type:  "array",
				Items: &schema.Field{Ref: "#/definitions/Order"},
			},
		},
	}

	got, err := Field(field, true, nil)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	want := schema.FieldOutput{Type: "Array<Array<Array<Order>>>", Required: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("array mismatch (-want +got):\n%s", diff)
	}

	dates, err := Field(schema.Field{Type: "array", Items: &schema.Field{Type: "string", Format: "date"}}, false, nil)
	if err != nil {
		t.Fatalf("translate dates: %v", err)
	}
	if dates.Type != "Array<Date>" {
		t.Fatalf("expected Array<Date>, got %q", dates.Type)
	}
}

func TestFieldArrayPropagatesItemFailure(t *testing.T) {
	t.Parallel()

	_, err := Field(schema.Field{Type: "array", Items: &schema.Field{Ref: "broken"}}, false, nil)
	if !errors.Is(err, ErrMalformedRef) {
		t.Fatalf("expected ErrMalformedRef from nested items, got %v", err)
	}
}

func TestFieldDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := &schema.Field{Type: "string", Format: "date"}
	field := schema.Field{Type: "array", Items: items}
	if _, err := Field(field, true, nil); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if field.Type != "array" || items.Type != "string" || items.Format != "date" {
		t.Fatalf("input mutated: %+v / %+v", field, items)
	}
}

func TestNewUsesCustomTable(t *testing.T) {
	t.Parallel()

	fn := New(map[string]string{"Money": "number", AnyRef: "mixed"})

	money, err := fn(schema.Field{Type: "array", Items: &schema.Field{Ref: "#/definitions/Money"}}, false, nil)
	if err != nil {
		t.Fatalf("translate money: %v", err)
	}
	if money.Type != "Array<number>" {
		t.Fatalf("expected Array<number>, got %q", money.Type)
	}

	anyField, err := fn(schema.Field{Ref: "#/definitions/x-any"}, false, nil)
	if err != nil {
		t.Fatalf("translate any: %v", err)
	}
	if anyField.Type != "mixed" {
		t.Fatalf("expected mixed, got %q", anyField.Type)
	}
}

func TestRefName(t *testing.T) {
	t.Parallel()

	name, err := RefName("#/definitions/User")
	if err != nil || name != "User" {
		t.Fatalf("expected User, got %q (%v)", name, err)
	}
	if _, err := RefName(""); !errors.Is(err, ErrMalformedRef) {
		t.Fatalf("expected ErrMalformedRef for empty ref, got %v", err)
	}
}

func TestFieldItemsRecurseThroughActiveTranslator(t *testing.T) {
	t.Parallel()

	var seen []string
	refsAsRecord := func(field schema.Field, required bool, self FieldTranslator) (schema.FieldOutput, error) {
		seen = append(seen, field.Type+field.Ref)
		if field.Ref != "" {
			return schema.FieldOutput{Type: "Record", Ref: field.Ref, Required: required}, nil
		}
		return Field(field, required, self)
	}

	field := schema.Field{
		Type: "array",
		Items: &schema.Field{
			Type:  "array",
			Items: &schema.Field{Ref: "#/definitions/Order"},
		},
	}
	got, err := Translate(refsAsRecord, field, true)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	want := schema.FieldOutput{Type: "Array<Array<Record>>", Required: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("override mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"array", "array", "#/definitions/Order"}, seen); diff != "" {
		t.Fatalf("translator calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateNilSelectsField(t *testing.T) {
	t.Parallel()

	got, err := Translate(nil, schema.Field{Type: "array", Items: &schema.Field{Ref: "#/definitions/x-any"}}, false)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.Type != "Array<any>" {
		t.Fatalf("expected Array<any>, got %q", got.Type)
	}
}
