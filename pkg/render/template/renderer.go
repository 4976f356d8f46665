package template

import (
	"io"
)

// RenderFunc turns one model's render context into text. Callers may pass
// their own implementation directly; otherwise one is compiled from a
// template source and cached by path.
type RenderFunc func(data Data) (string, error)

// Compiler turns template source into a RenderFunc. name identifies the
// source in error messages.
type Compiler interface {
	Compile(name string, source []byte) (RenderFunc, error)
}

// TemplateRenderer is the wider engine contract for callers that want to
// render ad-hoc template strings or extend the filter set.
type TemplateRenderer interface {
	Compiler
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
