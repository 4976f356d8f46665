package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	internalLoader "github.com/goliatone/go-modelgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-modelgen/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
	"github.com/goliatone/go-modelgen/pkg/render/template"
	"github.com/goliatone/go-modelgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-modelgen/pkg/schema"
	"github.com/goliatone/go-modelgen/pkg/templates"
	"github.com/goliatone/go-modelgen/pkg/translate"
	"github.com/goliatone/go-modelgen/pkg/writer"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom definitions parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithTemplateCache shares a compiled template cache between orchestrators.
// Each orchestrator otherwise owns its own cache.
func WithTemplateCache(cache *template.Cache) Option {
	return func(o *Orchestrator) {
		o.cache = cache
	}
}

// WithCompiler replaces the pongo2 engine used to compile template paths.
// Ignored when WithTemplateCache is also supplied.
func WithCompiler(compiler template.Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = compiler
	}
}

// WithSourceReader replaces how template sources are read. Ignored when
// WithTemplateCache is also supplied.
func WithSourceReader(read template.SourceReader) Option {
	return func(o *Orchestrator) {
		o.read = read
	}
}

// WithWriter injects the writer used when a run has a target.
func WithWriter(w *writer.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = w
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithDefaults replaces the builtin defaults every run is merged over.
func WithDefaults(cfg Config) Option {
	return func(o *Orchestrator) {
		o.defaults = cfg
		o.defaultsSpecified = true
	}
}

// Orchestrator coordinates a generation run from model definitions to
// rendered (and optionally written) output.
type Orchestrator struct {
	loader            pkgopenapi.Loader
	parser            pkgopenapi.Parser
	cache             *template.Cache
	compiler          template.Compiler
	read              template.SourceReader
	writer            *writer.Writer
	logger            *slog.Logger
	defaults          Config
	defaultsSpecified bool
	initialiseErr     error
}

// New constructs an Orchestrator applying any provided options. Missing
// collaborators are initialised with the builtin implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Generate translates and renders every model in defs. cfg is merged over
// the orchestrator defaults. When cfg has a Target, all files are written
// before Generate returns. Any failure aborts the run and no results are
// returned.
func (o *Orchestrator) Generate(ctx context.Context, defs schema.Definitions, cfg Config) (schema.Results, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	merged := MergeConfig(o.defaults, cfg)

	render, err := o.renderFunc(ctx, merged)
	if err != nil {
		return nil, err
	}

	results := make(schema.Results, len(defs))
	for _, modelName := range defs.Names() {
		out, err := o.generateModel(modelName, defs[modelName], merged, render)
		if err != nil {
			o.logger.Error("generation aborted", "model", modelName, "error", err)
			return nil, err
		}
		results[modelName] = out
	}
	o.logger.Debug("rendered models", "count", len(results))

	if merged.Target == nil {
		return results, nil
	}

	if err := o.writer.WriteAll(ctx, results, merged.Target, merged.TemplateExtension); err != nil {
		return nil, fmt.Errorf("orchestrator: write results: %w", err)
	}
	o.logger.Info("wrote models", "count", len(results))
	return results, nil
}

// GenerateFromSource loads and parses the document at src before running
// Generate.
func (o *Orchestrator) GenerateFromSource(ctx context.Context, src pkgopenapi.Source, cfg Config) (schema.Results, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if src == nil {
		return nil, errors.New("orchestrator: source is required")
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	defs, err := o.parser.Definitions(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse definitions: %w", err)
	}
	o.logger.Debug("loaded definitions", "source", src.Location(), "models", len(defs))

	return o.Generate(ctx, defs, cfg)
}

// TemplateCache exposes the cache compiled templates are stored in.
func (o *Orchestrator) TemplateCache() *template.Cache {
	return o.cache
}

func (o *Orchestrator) renderFunc(ctx context.Context, cfg Config) (template.RenderFunc, error) {
	if cfg.TemplateFn != nil {
		return cfg.TemplateFn, nil
	}
	render, err := o.cache.Resolve(ctx, cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("resolved template", "path", cfg.TemplatePath)
	return render, nil
}

func (o *Orchestrator) generateModel(modelName string, def schema.Definition, cfg Config, render template.RenderFunc) (string, error) {
	modelSchema, err := translate.Schema(def, cfg.TranslateField)
	if err != nil {
		var translateErr *translate.Error
		if errors.As(err, &translateErr) {
			translateErr.Model = modelName
		}
		return "", err
	}

	data := template.NewData(modelName, modelSchema, cfg.TemplateData)
	if cfg.PreTemplateFn != nil {
		data, err = cfg.PreTemplateFn(data)
		if err != nil {
			return "", &RenderError{Model: modelName, Stage: "pre-template", Err: err}
		}
	}

	out, err := render(data)
	if err != nil {
		return "", &RenderError{Model: modelName, Stage: "render", Err: err}
	}
	return out, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !o.defaultsSpecified {
		o.defaults = Defaults()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.writer == nil {
		o.writer = writer.New(writer.WithLogger(o.logger))
	}
	if o.cache == nil {
		if o.read == nil {
			o.read = template.DefaultSourceReader(templates.FS())
		}
		if o.compiler == nil {
			engine, err := gotemplate.New()
			if err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: default template engine: %w", err)
				return
			}
			o.compiler = engine
		}
		o.cache = template.NewCache(o.compiler, o.read)
	}
}
