package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Parser implements pkgopenapi.Parser for raw model mappings, documents with
// a definitions key (Swagger 2 included) and OpenAPI 3 documents.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	if options.Mode == "" {
		options.Mode = pkgopenapi.ModeAuto
	}
	return &Parser{options: options}
}

// envelope captures the top level keys used for detection. Documents are
// JSON or YAML; yaml.v3 reads both. Definitions stays nil when the key is
// absent and points at an empty map for "definitions: {}".
type envelope struct {
	OpenAPI     string              `yaml:"openapi"`
	Swagger     string              `yaml:"swagger"`
	Definitions *schema.Definitions `yaml:"definitions"`
	Components  *components         `yaml:"components"`
}

type components struct {
	Schemas map[string]any `yaml:"schemas"`
}

func decodeEnvelope(source []byte) (envelope, error) {
	var env envelope
	if err := yaml.Unmarshal(source, &env); err != nil {
		return env, fmt.Errorf("openapi parser: decode document: %w", err)
	}
	return env, nil
}

// Definitions extracts the model definitions from doc.
func (p *Parser) Definitions(ctx context.Context, doc pkgopenapi.Document) (schema.Definitions, error) {
	if ctx == nil {
		return nil, errors.New("openapi parser: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	source, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	var defs schema.Definitions
	switch p.options.Mode {
	case pkgopenapi.ModeRaw:
		defs, err = decodeRaw(source)
	case pkgopenapi.ModeDefinitions:
		env, decodeErr := decodeEnvelope(source)
		if decodeErr != nil {
			return nil, decodeErr
		}
		if env.Definitions == nil {
			return nil, errors.New("openapi parser: document has no definitions key")
		}
		defs = *env.Definitions
	case pkgopenapi.ModeAuto:
		defs, err = p.detect(ctx, raw, source)
	default:
		return nil, fmt.Errorf("openapi parser: unknown mode %q", p.options.Mode)
	}
	if err != nil {
		return nil, err
	}

	if len(defs) == 0 && !p.options.AllowEmpty {
		return nil, errors.New("openapi parser: document does not contain any model definitions")
	}
	if defs == nil {
		defs = schema.Definitions{}
	}
	return defs, nil
}

func (p *Parser) detect(ctx context.Context, raw, source []byte) (schema.Definitions, error) {
	env, err := decodeEnvelope(source)
	if err != nil {
		return nil, err
	}

	switch {
	case env.OpenAPI != "":
		hasSchemas := env.Components != nil && len(env.Components.Schemas) > 0
		return p.componentSchemas(ctx, raw, hasSchemas)
	case env.Definitions != nil:
		return *env.Definitions, nil
	case env.Swagger != "":
		// Swagger 2 without definitions has no models to offer.
		return schema.Definitions{}, nil
	default:
		return decodeRaw(source)
	}
}

func (p *Parser) componentSchemas(ctx context.Context, raw []byte, hasSchemas bool) (schema.Definitions, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	defs := make(schema.Definitions)
	if !hasSchemas {
		return defs, nil
	}
	for name, ref := range spec.Components.Schemas {
		defs[name] = definitionFromSchemaRef(ref)
	}
	return defs, nil
}

// normalize re-encodes JSON payloads as YAML. JSON is mostly valid YAML, but
// tab indentation in pretty printed JSON is not.
func normalize(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw, nil
	}
	var payload any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("openapi parser: decode json: %w", err)
	}
	out, err := yaml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: re-encode json: %w", err)
	}
	return out, nil
}

func decodeRaw(raw []byte) (schema.Definitions, error) {
	var defs schema.Definitions
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("openapi parser: decode model mapping: %w", err)
	}
	return defs, nil
}
