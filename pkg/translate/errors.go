package translate

import (
	"errors"
	"fmt"
)

// ErrMalformedRef is matched by errors.Is for references without a trailing
// path segment.
var ErrMalformedRef = errors.New("translate: malformed reference")

// RefError reports the offending reference string.
type RefError struct {
	Ref string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("translate: reference %q has no trailing path segment", e.Ref)
}

// Is lets errors.Is(err, ErrMalformedRef) match.
func (e *RefError) Is(target error) bool {
	return target == ErrMalformedRef
}

// Error wraps a translator failure with the property (and, once the
// orchestrator sees it, the model) that produced it.
type Error struct {
	Model string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("translate: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("translate: model %q field %q: %v", e.Model, e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
