package writer

import "path/filepath"

// Target decides where each model's rendered output is written.
type Target interface {
	Path(modelName, extension string) string
}

// Dir writes every model to <dir>/<modelName><extension>.
type Dir string

// Path joins the directory with the model name and extension.
func (d Dir) Path(modelName, extension string) string {
	return filepath.Join(string(d), modelName+extension)
}

// NameFunc delegates the full destination path to a function. The extension
// is not applied; the returned path is used verbatim.
type NameFunc func(modelName string) string

// Path calls the function with the model name.
func (f NameFunc) Path(modelName, _ string) string {
	return f(modelName)
}
