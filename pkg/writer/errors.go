package writer

import "fmt"

// WriteError reports a single failed file write.
type WriteError struct {
	Model string
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writer: write %q for model %q: %v", e.Path, e.Model, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
