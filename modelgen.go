// Package modelgen generates source files, one per model, from the
// definitions of a Swagger or OpenAPI document (or a bare model map). Each
// property is translated into a typed descriptor and every model is rendered
// through a template; the builtin template emits Flow-typed JavaScript
// classes.
//
// Typical use:
//
//	results, err := modelgen.GenerateFromSource(ctx,
//	    pkgopenapi.SourceFromFile("swagger.json"),
//	    modelgen.Config{Target: writer.Dir("src/models")},
//	)
package modelgen

import (
	"context"
	"fmt"

	internalLoader "github.com/goliatone/go-modelgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-modelgen/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Config aliases orchestrator.Config so callers only need the root import
// for common runs.
type Config = orchestrator.Config

// Defaults returns the builtin run configuration.
func Defaults() Config {
	return orchestrator.Defaults()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module. Reuse one orchestrator to share its template cache across runs.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders every model in defs with a fresh orchestrator.
func Generate(ctx context.Context, defs schema.Definitions, cfg Config, options ...orchestrator.Option) (schema.Results, error) {
	return orchestrator.New(options...).Generate(ctx, defs, cfg)
}

// GenerateFromSource loads the document at src, extracts its definitions and
// renders them.
func GenerateFromSource(ctx context.Context, src pkgopenapi.Source, cfg Config, options ...orchestrator.Option) (schema.Results, error) {
	return orchestrator.New(options...).GenerateFromSource(ctx, src, cfg)
}

// NewLoader returns the builtin document loader. URL sources stay disabled
// unless an HTTP option is passed.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser returns the builtin definitions parser.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}

// LoadDefinitions reads src and extracts its model definitions without
// rendering anything, e.g. to inspect or filter models before Generate.
func LoadDefinitions(ctx context.Context, src pkgopenapi.Source, mode pkgopenapi.Mode) (schema.Definitions, error) {
	doc, err := NewLoader().Load(ctx, src)
	if err != nil {
		return nil, err
	}
	defs, err := NewParser(pkgopenapi.WithMode(mode)).Definitions(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("modelgen: definitions of %s: %w", src.Location(), err)
	}
	return defs, nil
}
