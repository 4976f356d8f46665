package template

import (
	"context"
	"errors"
	"sync"
)

// Cache holds compiled renderers keyed by template path. Entries are never
// invalidated: a path's content is assumed fixed for the cache's lifetime.
// Concurrent misses on the same path may compile twice; the first stored
// renderer is kept and returned to both callers.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]RenderFunc
	compiler Compiler
	read     SourceReader
}

// NewCache constructs a cache that reads sources with read and compiles them
// with compiler.
func NewCache(compiler Compiler, read SourceReader) *Cache {
	return &Cache{
		entries:  make(map[string]RenderFunc),
		compiler: compiler,
		read:     read,
	}
}

// Resolve returns the compiled renderer for path, reading and compiling the
// source on first use. Failures are reported as *CompileError.
func (c *Cache) Resolve(ctx context.Context, path string) (RenderFunc, error) {
	if c == nil {
		return nil, errors.New("template: cache is nil")
	}
	if path == "" {
		return nil, &CompileError{Path: path, Err: errors.New("template path is required")}
	}

	c.mu.RLock()
	fn, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return fn, nil
	}

	if c.compiler == nil || c.read == nil {
		return nil, &CompileError{Path: path, Err: errors.New("cache has no compiler or source reader")}
	}

	source, err := c.read(ctx, path)
	if err != nil {
		return nil, &CompileError{Path: path, Err: err}
	}
	compiled, err := c.compiler.Compile(path, source)
	if err != nil {
		return nil, &CompileError{Path: path, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[path]; ok {
		return existing, nil
	}
	c.entries[path] = compiled
	return compiled, nil
}

// Len reports how many paths have been compiled.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
