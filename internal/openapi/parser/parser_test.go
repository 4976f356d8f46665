package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
	"github.com/goliatone/go-modelgen/pkg/schema"
	"github.com/goliatone/go-modelgen/pkg/testsupport"
)

func TestDefinitionsSwaggerFixture(t *testing.T) {
	t.Parallel()

	doc := testsupport.LoadDocument(t, testsupport.FixturePath("swagger.json"))
	defs, err := New(pkgopenapi.NewParserOptions()).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}

	if diff := cmp.Diff([]string{"ApiKey", "Instrument", "Order", "User"}, defs.Names()); diff != "" {
		t.Fatalf("model names mismatch (-want +got):\n%s", diff)
	}

	user := defs["User"]
	if diff := cmp.Diff([]string{"username", "email"}, user.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	want := schema.Field{Type: "array", Items: &schema.Field{Ref: "#/definitions/ApiKey"}}
	if diff := cmp.Diff(want, user.Properties["apiKeys"]); diff != "" {
		t.Fatalf("apiKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsOpenAPI3KeepsReferences(t *testing.T) {
	t.Parallel()

	doc := testsupport.LoadDocument(t, testsupport.FixturePath("openapi3.yaml"))
	defs, err := New(pkgopenapi.NewParserOptions()).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}

	want := schema.Definitions{
		"Order": {
			Properties: map[string]schema.Field{
				"orderID":    {Type: "string"},
				"timestamp":  {Type: "string", Format: "date-time"},
				"instrument": {Ref: "#/components/schemas/Instrument"},
				"fills":      {Type: "array", Items: &schema.Field{Type: "number"}},
			},
			Required: []string{"orderID"},
		},
		"Instrument": {
			Properties: map[string]schema.Field{
				"symbol": {Type: "string"},
				"orders": {Type: "array", Items: &schema.Field{Ref: "#/components/schemas/Order"}},
			},
		},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsRawYAML(t *testing.T) {
	t.Parallel()

	doc := testsupport.LoadDocument(t, testsupport.FixturePath("models.yaml"))
	defs, err := New(pkgopenapi.NewParserOptions()).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}
	if diff := cmp.Diff([]string{"Post", "Tag"}, defs.Names()); diff != "" {
		t.Fatalf("model names mismatch (-want +got):\n%s", diff)
	}
	if got := defs["Post"].Properties["published"]; got.Format != "date" {
		t.Fatalf("expected published format date, got %+v", got)
	}
}

func TestDefinitionsRawJSONWithTabs(t *testing.T) {
	t.Parallel()

	raw := "{\n\t\"User\": {\n\t\t\"properties\": {\"id\": {\"type\": \"number\"}},\n\t\t\"required\": [\"id\"]\n\t}\n}"
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(raw))

	defs, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithMode(pkgopenapi.ModeRaw))).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}
	want := schema.Definitions{"User": {
		Properties: map[string]schema.Field{"id": {Type: "number"}},
		Required:   []string{"id"},
	}}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsKeyDecodesModels(t *testing.T) {
	t.Parallel()

	raw := []byte(`
definitions:
  Tag:
    type: object
    required: [label]
    properties:
      label:
        type: string
      parent:
        $ref: '#/definitions/Tag'
`)
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.yaml"), raw)

	for _, mode := range []pkgopenapi.Mode{pkgopenapi.ModeAuto, pkgopenapi.ModeDefinitions} {
		defs, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithMode(mode))).Definitions(context.Background(), doc)
		if err != nil {
			t.Fatalf("mode %s: definitions: %v", mode, err)
		}
		want := schema.Definitions{
			"Tag": {
				Properties: map[string]schema.Field{
					"label":  {Type: "string"},
					"parent": {Ref: "#/definitions/Tag"},
				},
				Required: []string{"label"},
			},
		}
		if diff := cmp.Diff(want, defs); diff != "" {
			t.Fatalf("mode %s: definitions mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestDefinitionsModeDefinitionsSwaggerFixture(t *testing.T) {
	t.Parallel()

	doc := testsupport.LoadDocument(t, testsupport.FixturePath("swagger.json"))
	defs, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithMode(pkgopenapi.ModeDefinitions))).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}
	if got := defs["Order"].Properties["instrument"]; got.Ref != "#/definitions/Instrument" {
		t.Fatalf("expected instrument ref to survive, got %+v", got)
	}
	if len(defs["ApiKey"].Properties) != 9 {
		t.Fatalf("expected 9 ApiKey properties, got %d", len(defs["ApiKey"].Properties))
	}
}

func TestDefinitionsModeDefinitionsRequiresKey(t *testing.T) {
	t.Parallel()

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(`{"User":{"properties":{}}}`))
	_, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithMode(pkgopenapi.ModeDefinitions))).Definitions(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "definitions") {
		t.Fatalf("expected missing definitions error, got %v", err)
	}
}

func TestDefinitionsEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(`{"swagger":"2.0","paths":{}}`))

	if _, err := New(pkgopenapi.NewParserOptions()).Definitions(context.Background(), doc); err == nil {
		t.Fatal("expected empty document to fail by default")
	}

	defs, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithAllowEmpty(true))).Definitions(context.Background(), doc)
	if err != nil {
		t.Fatalf("definitions: %v", err)
	}
	if defs == nil || len(defs) != 0 {
		t.Fatalf("expected empty non-nil definitions, got %#v", defs)
	}
}

func TestDefinitionsRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(`{"User": `))
	if _, err := New(pkgopenapi.NewParserOptions()).Definitions(context.Background(), doc); err == nil {
		t.Fatal("expected malformed JSON to fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	valid := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(`{"User":{}}`))
	if _, err := New(pkgopenapi.NewParserOptions()).Definitions(ctx, valid); err == nil {
		t.Fatal("expected cancelled context to fail")
	}
}
