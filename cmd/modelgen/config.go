package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/writer"
)

// options is the resolved CLI configuration. The YAML keys match the flag
// names in camel case.
type options struct {
	InputPath         string         `yaml:"inputPath"`
	TargetPath        string         `yaml:"targetPath"`
	TemplatePath      string         `yaml:"templatePath"`
	TemplateDir       string         `yaml:"templateDir"`
	TemplateExtension string         `yaml:"templateExtension"`
	SuperClass        string         `yaml:"superClass"`
	SuperClassPath    string         `yaml:"superClassPath"`
	Mode              string         `yaml:"mode"`
	Mkdir             bool           `yaml:"mkdir"`
	TemplateData      map[string]any `yaml:"templateData"`
}

// flagSource is the subset of *cli.Context used to overlay flags.
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	Bool(name string) bool
}

func loadConfigFile(path string) (options, error) {
	var opts options
	if path == "" {
		return opts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("modelgen: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("modelgen: parse config %q: %w", path, err)
	}
	return opts, nil
}

// resolveOptions layers explicitly set flags (or env vars) over the config
// file, and flag defaults under both. The super class flags have no default
// here: when neither the flag nor the top level config key is set, the
// config's templateData (or the builtin defaults) decide.
func resolveOptions(configPath string, flags flagSource) (options, error) {
	opts, err := loadConfigFile(configPath)
	if err != nil {
		return opts, err
	}

	overlay := func(dst *string, name string) {
		if flags.IsSet(name) || *dst == "" {
			*dst = flags.String(name)
		}
	}
	overlay(&opts.InputPath, "input-path")
	overlay(&opts.TargetPath, "target-path")
	overlay(&opts.TemplatePath, "template-path")
	overlay(&opts.TemplateDir, "template-dir")
	overlay(&opts.TemplateExtension, "template-extension")
	overlay(&opts.Mode, "mode")

	if flags.IsSet("super-class") {
		opts.SuperClass = flags.String("super-class")
	}
	if flags.IsSet("super-class-path") {
		opts.SuperClassPath = flags.String("super-class-path")
	}

	if flags.IsSet("mkdir") {
		opts.Mkdir = flags.Bool("mkdir")
	}
	return opts, nil
}

func (o options) validate() error {
	if o.InputPath == "" || o.TargetPath == "" {
		return errMissingPath
	}
	return nil
}

func (o options) generateConfig() orchestrator.Config {
	data := make(map[string]any, len(o.TemplateData)+2)
	for key, value := range o.TemplateData {
		data[key] = value
	}
	if o.SuperClass != "" {
		data[orchestrator.ModelSuperClassKey] = o.SuperClass
	}
	if o.SuperClassPath != "" {
		data[orchestrator.ModelSuperClassPathKey] = o.SuperClassPath
	}

	return orchestrator.Config{
		TemplatePath:      o.TemplatePath,
		TemplateExtension: o.TemplateExtension,
		TemplateData:      data,
		Target:            writer.Dir(o.TargetPath),
	}
}
