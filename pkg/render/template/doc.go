// Package template defines the render context, the renderer contracts, and
// the path-keyed cache of compiled templates. Engine implementations live in
// subpackages (see gotemplate).
package template
