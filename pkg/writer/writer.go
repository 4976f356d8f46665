package writer

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// WriteFunc is the filesystem primitive used for each file.
type WriteFunc func(path string, data []byte, perm fs.FileMode) error

// Option customises a Writer.
type Option func(*Writer)

// WithFileMode overrides the permissions of written files (default 0644).
func WithFileMode(mode fs.FileMode) Option {
	return func(w *Writer) {
		w.mode = mode
	}
}

// WithCreateDirs creates missing parent directories before writing.
func WithCreateDirs(enabled bool) Option {
	return func(w *Writer) {
		w.mkdirs = enabled
	}
}

// WithWriteFunc replaces os.WriteFile, mostly useful in tests.
func WithWriteFunc(fn WriteFunc) Option {
	return func(w *Writer) {
		if fn != nil {
			w.write = fn
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Writer persists rendered results, one file per model.
type Writer struct {
	mode   fs.FileMode
	mkdirs bool
	write  WriteFunc
	logger *slog.Logger
}

// New constructs a Writer.
func New(options ...Option) *Writer {
	w := &Writer{
		mode:   0o644,
		write:  os.WriteFile,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// WriteAll writes every entry of results concurrently and waits for all of
// them to settle. The first failure is returned as a *WriteError; files that
// were written successfully stay on disk.
func (w *Writer) WriteAll(ctx context.Context, results schema.Results, target Target, extension string) error {
	if ctx == nil {
		return errors.New("writer: context is required")
	}
	if target == nil {
		return errors.New("writer: target is required")
	}
	if fn, ok := target.(NameFunc); ok && fn == nil {
		return errors.New("writer: name func target is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var group errgroup.Group
	for modelName, content := range results {
		modelName, content := modelName, content
		path := target.Path(modelName, extension)
		group.Go(func() error {
			if err := w.writeOne(ctx, path, []byte(content)); err != nil {
				w.logger.Error("write failed", "model", modelName, "path", path, "error", err)
				return &WriteError{Model: modelName, Path: path, Err: err}
			}
			w.logger.Debug("wrote model", "model", modelName, "path", path, "bytes", len(content))
			return nil
		})
	}
	return group.Wait()
}

func (w *Writer) writeOne(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return errors.New("empty destination path")
	}
	if w.mkdirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
	}
	return w.write(path, data, w.mode)
}
