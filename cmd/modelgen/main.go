package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/AlecAivazis/survey/v2"
	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	modelgen "github.com/goliatone/go-modelgen"
	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-modelgen/pkg/writer"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "modelgen",
		Usage:   "generate model classes from Swagger/OpenAPI definitions",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-path",
				Aliases: []string{"i"},
				Usage:   "schema document (file path or http(s) URL)",
				EnvVars: []string{"MODELGEN_INPUT_PATH"},
			},
			&cli.StringFlag{
				Name:    "target-path",
				Aliases: []string{"o"},
				Usage:   "directory generated files are written to",
				EnvVars: []string{"MODELGEN_TARGET_PATH"},
			},
			&cli.StringFlag{
				Name:    "template-path",
				Usage:   "template file; builtin: paths read the embedded templates",
				Value:   orchestrator.DefaultTemplatePath,
				EnvVars: []string{"MODELGEN_TEMPLATE_PATH"},
			},
			&cli.StringFlag{
				Name:    "template-dir",
				Usage:   "directory custom templates can include or extend partials from",
				EnvVars: []string{"MODELGEN_TEMPLATE_DIR"},
			},
			&cli.StringFlag{
				Name:    "template-extension",
				Usage:   "suffix appended to each model name",
				Value:   orchestrator.DefaultTemplateExtension,
				EnvVars: []string{"MODELGEN_TEMPLATE_EXTENSION"},
			},
			&cli.StringFlag{
				Name:    "super-class",
				Usage:   "class every generated model extends",
				Value:   orchestrator.DefaultModelSuperClass,
				EnvVars: []string{"MODELGEN_SUPER_CLASS"},
			},
			&cli.StringFlag{
				Name:    "super-class-path",
				Usage:   "import path of the super class",
				Value:   orchestrator.DefaultModelSuperClassPath,
				EnvVars: []string{"MODELGEN_SUPER_CLASS_PATH"},
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "where definitions live: auto, definitions or raw",
				Value:   string(pkgopenapi.ModeAuto),
				EnvVars: []string{"MODELGEN_MODE"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with defaults for any flag plus templateData",
				EnvVars: []string{"MODELGEN_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "mkdir",
				Usage:   "create the target directory when missing",
				EnvVars: []string{"MODELGEN_MKDIR"},
			},
			&cli.BoolFlag{
				Name:  "interactive",
				Usage: "prompt for missing input and target paths",
			},
			&cli.DurationFlag{
				Name:    "http-timeout",
				Usage:   "timeout for remote schema documents",
				Value:   30 * time.Second,
				EnvVars: []string{"MODELGEN_HTTP_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: debug, info, warn or error",
				Value:   "warn",
				EnvVars: []string{"MODELGEN_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Action: runGenerate,
	}
	return app.Run(args)
}

func runGenerate(cctx *cli.Context) error {
	ctx := cctx.Context
	logger := configLogger(cctx, os.Stderr)

	opts, err := resolveOptions(cctx.String("config"), cctx)
	if err != nil {
		return err
	}

	if cctx.Bool("interactive") {
		if err := promptMissing(&opts); err != nil {
			return err
		}
	}
	if err := opts.validate(); err != nil {
		return err
	}

	mode, err := pkgopenapi.ParseMode(opts.Mode)
	if err != nil {
		return err
	}
	src, err := pkgopenapi.ParseSource(opts.InputPath)
	if err != nil {
		return err
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithLoader(modelgen.NewLoader(pkgopenapi.WithHTTPFallback(cctx.Duration("http-timeout")))),
		orchestrator.WithParser(modelgen.NewParser(pkgopenapi.WithMode(mode))),
		orchestrator.WithWriter(writer.New(
			writer.WithCreateDirs(opts.Mkdir),
			writer.WithLogger(logger),
		)),
	}
	if opts.TemplateDir != "" {
		engine, err := gotemplate.New(gotemplate.WithBaseDir(opts.TemplateDir))
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithCompiler(engine))
	}

	gen := modelgen.NewOrchestrator(options...)

	results, err := gen.GenerateFromSource(ctx, src, opts.generateConfig())
	if err != nil {
		return err
	}

	logger.Info("generated models", "count", len(results), "target", opts.TargetPath)
	for _, name := range results.Names() {
		fmt.Fprintln(cctx.App.Writer, writer.Dir(opts.TargetPath).Path(name, opts.TemplateExtension))
	}
	return nil
}

func promptMissing(opts *options) error {
	ask := func(message string, dst *string) error {
		if *dst != "" {
			return nil
		}
		prompt := &survey.Input{Message: message}
		if err := survey.AskOne(prompt, dst, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("modelgen: prompt: %w", err)
		}
		*dst = strings.TrimSpace(*dst)
		return nil
	}

	if err := ask("Schema document path or URL:", &opts.InputPath); err != nil {
		return err
	}
	return ask("Target directory:", &opts.TargetPath)
}

func configLogger(cctx *cli.Context, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

var errMissingPath = errors.New("modelgen: --input-path and --target-path are required (or use --interactive)")
