package template

import "fmt"

// CompileError reports a template source that could not be read or
// compiled.
type CompileError struct {
	Path string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("template: compile %q: %v", e.Path, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
