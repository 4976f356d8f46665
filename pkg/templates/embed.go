// Package templates embeds the builtin model templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed flow/*.tpl
var embedded embed.FS

// FlowModel is the name of the default Flow model template inside FS.
const FlowModel = "flow/model.js.flow.tpl"

// FS exposes the embedded templates.
func FS() fs.FS {
	return embedded
}
