package orchestrator

import "fmt"

// RenderError reports a failure while preparing or rendering one model.
type RenderError struct {
	Model string
	// Stage is "pre-template" when the hook failed, "render" otherwise.
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("orchestrator: %s model %q: %v", e.Stage, e.Model, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
