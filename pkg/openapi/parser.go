package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Parser extracts model definitions from a loaded document.
type Parser interface {
	Definitions(ctx context.Context, doc Document) (schema.Definitions, error)
}

// Mode selects which part of a document holds the model definitions.
type Mode string

const (
	// ModeAuto detects OpenAPI 3 components, Swagger 2 or plain documents
	// with a definitions key, and otherwise treats the document as the raw
	// model mapping.
	ModeAuto Mode = "auto"
	// ModeDefinitions reads the top level definitions key.
	ModeDefinitions Mode = "definitions"
	// ModeRaw treats the whole document as the model mapping.
	ModeRaw Mode = "raw"
)

// ParseMode validates a user supplied mode name. Empty selects ModeAuto.
func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeDefinitions, ModeRaw:
		return mode, nil
	default:
		return "", fmt.Errorf("openapi: unknown parse mode %q", raw)
	}
}

// ParserOptions configures definition extraction.
type ParserOptions struct {
	// Mode picks where definitions are read from. Defaults to ModeAuto.
	Mode Mode

	// AllowEmpty accepts documents that yield no models. Off by default so a
	// wrong mode or path surfaces as an error instead of an empty run.
	AllowEmpty bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithMode selects the extraction mode.
func WithMode(mode Mode) ParserOption {
	return func(opts *ParserOptions) {
		if mode != "" {
			opts.Mode = mode
		}
	}
}

// WithAllowEmpty toggles acceptance of documents without models.
func WithAllowEmpty(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmpty = enabled
	}
}

// NewParserOptions applies ParserOption functions over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Mode: ModeAuto,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
