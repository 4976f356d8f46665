package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	pkgopenapi "github.com/goliatone/go-modelgen/pkg/openapi"
)

// fetchFunc reads the raw bytes behind a source location.
type fetchFunc func(ctx context.Context, location string) ([]byte, error)

// Loader implements pkgopenapi.Loader. Each source kind maps to one fetch
// strategy; kinds without a strategy are rejected with a reason.
type Loader struct {
	fetchers map[pkgopenapi.SourceKind]fetchFunc
	missing  map[pkgopenapi.SourceKind]error
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. Files are always
// readable; fs.FS sources need WithFileSystem and URLs need an HTTP client
// or WithHTTPFallback.
func New(options pkgopenapi.LoaderOptions) *Loader {
	l := &Loader{
		fetchers: map[pkgopenapi.SourceKind]fetchFunc{
			pkgopenapi.SourceKindFile: loadFile,
		},
		missing: map[pkgopenapi.SourceKind]error{
			pkgopenapi.SourceKindFS:  errors.New("openapi loader: filesystem is not configured"),
			pkgopenapi.SourceKindURL: errors.New("openapi loader: http support disabled"),
		},
	}

	if files := options.FileSystem; files != nil {
		l.fetchers[pkgopenapi.SourceKindFS] = func(ctx context.Context, name string) ([]byte, error) {
			return loadFromFS(ctx, files, name)
		}
	}

	if client := httpClient(options); client != nil {
		timeout := options.RequestTimeout
		l.fetchers[pkgopenapi.SourceKindURL] = func(ctx context.Context, url string) ([]byte, error) {
			return loadHTTP(ctx, client, url, timeout)
		}
	}
	return l
}

// Load fetches a document from src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if ctx == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: context is required")
	}
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	fetch, ok := l.fetchers[src.Kind()]
	if !ok {
		if reason, known := l.missing[src.Kind()]; known {
			return pkgopenapi.Document{}, reason
		}
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}

	data, err := fetch(ctx, src.Location())
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: load %q: %w", src.Location(), err)
	}
	return pkgopenapi.NewDocument(src, data)
}

// httpClient returns the client used for URL sources, or nil when remote
// loading is disabled. Caller supplied clients are copied so the request
// timeout can be applied without mutating them.
func httpClient(options pkgopenapi.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	case options.AllowHTTPFallback:
		return &http.Client{Timeout: options.RequestTimeout}
	default:
		return nil
	}
}
