package template

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BuiltinPrefix marks template paths served from the embedded template FS
// rather than the local disk.
const BuiltinPrefix = "builtin:"

// SourceReader loads raw template source for a path.
type SourceReader func(ctx context.Context, path string) ([]byte, error)

// DefaultSourceReader reads builtin: paths from builtin and everything else
// from disk.
func DefaultSourceReader(builtin fs.FS) SourceReader {
	return func(ctx context.Context, path string) ([]byte, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if name, ok := strings.CutPrefix(path, BuiltinPrefix); ok {
			if builtin == nil {
				return nil, errors.New("template: builtin templates are not configured")
			}
			return fs.ReadFile(builtin, name)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		return os.ReadFile(abs)
	}
}
