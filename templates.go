package modelgen

import (
	"io/fs"

	"github.com/goliatone/go-modelgen/pkg/templates"
)

// EmbeddedTemplates exposes the builtin templates so callers can copy or
// extend them. Paths inside the FS are addressed with the "builtin:" prefix
// when used as a template path.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
