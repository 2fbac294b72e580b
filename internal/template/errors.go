package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template does not exist
	// in the embedded filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrRender indicates template execution failed, typically because a
	// template references a key absent from the data.
	ErrRender = errors.New("template: render failed")
)
