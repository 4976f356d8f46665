package orchestrator

import (
	"github.com/goliatone/go-modelgen/pkg/render/template"
	"github.com/goliatone/go-modelgen/pkg/templates"
	"github.com/goliatone/go-modelgen/pkg/translate"
	"github.com/goliatone/go-modelgen/pkg/writer"
)

const (
	// DefaultTemplatePath points at the embedded Flow model template.
	DefaultTemplatePath = template.BuiltinPrefix + templates.FlowModel
	// DefaultTemplateExtension is appended to model names when writing to a
	// directory.
	DefaultTemplateExtension = ".js.flow"
	// DefaultModelSuperClass is the class generated models extend.
	DefaultModelSuperClass = "Model"
	// DefaultModelSuperClassPath is the import path of the super class.
	DefaultModelSuperClassPath = "models/_model"
)

// Template data keys understood by the builtin template.
const (
	AdditionalTypesKey     = "additionalTypes"
	ModelSuperClassKey     = "modelSuperClass"
	ModelSuperClassPathKey = "modelSuperClassPath"
)

// PreTemplateFunc runs just before rendering and may rewrite anything in the
// render context, including the model name.
type PreTemplateFunc func(data template.Data) (template.Data, error)

// Config holds the options of a single generation run. Zero fields fall back
// to Defaults when merged.
type Config struct {
	// TemplatePath is compiled (once per path) when TemplateFn is nil.
	TemplatePath string

	// TemplateFn renders directly and takes precedence over TemplatePath.
	TemplateFn template.RenderFunc

	// TemplateData is static data merged into every model's render context.
	TemplateData map[string]any

	// TemplateExtension is the output file suffix for directory targets.
	TemplateExtension string

	// Target enables writing. Nil means results are only returned.
	Target writer.Target

	// TranslateField replaces the builtin field translator.
	TranslateField translate.FieldTranslator

	// PreTemplateFn optionally rewrites each render context.
	PreTemplateFn PreTemplateFunc
}

// Defaults returns the builtin configuration: the embedded Flow template,
// the .js.flow extension and the builtin field translator.
func Defaults() Config {
	return Config{
		TemplatePath: DefaultTemplatePath,
		TemplateData: map[string]any{
			AdditionalTypesKey:     map[string]any{},
			ModelSuperClassKey:     DefaultModelSuperClass,
			ModelSuperClassPathKey: DefaultModelSuperClassPath,
		},
		TemplateExtension: DefaultTemplateExtension,
		TranslateField:    translate.Field,
	}
}

// MergeConfig overlays override on base. Set fields replace their base
// counterpart; TemplateData is merged key by key so callers only need to
// supply the entries they change.
func MergeConfig(base, override Config) Config {
	out := base

	if override.TemplatePath != "" {
		out.TemplatePath = override.TemplatePath
	}
	if override.TemplateFn != nil {
		out.TemplateFn = override.TemplateFn
	}
	if override.TemplateExtension != "" {
		out.TemplateExtension = override.TemplateExtension
	}
	if override.Target != nil {
		out.Target = override.Target
	}
	if override.TranslateField != nil {
		out.TranslateField = override.TranslateField
	}
	if override.PreTemplateFn != nil {
		out.PreTemplateFn = override.PreTemplateFn
	}

	data := make(map[string]any, len(base.TemplateData)+len(override.TemplateData))
	for key, value := range base.TemplateData {
		data[key] = value
	}
	for key, value := range override.TemplateData {
		data[key] = value
	}
	out.TemplateData = data

	return out
}
