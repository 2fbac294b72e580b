// Package template renders the embedded file templates that feature
// handlers write into generated projects. Templates are Go text/template
// files rendered in strict mode: a missing key is an error, not empty
// output, so a malformed provider definition fails loudly.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"
)

// Renderer renders named templates from an embedded filesystem.
type Renderer interface {
	// Render parses the named template and executes it with the given
	// data. Returns ErrTemplateNotFound when the name does not exist and
	// ErrRender when execution fails (including missing keys).
	Render(name string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(name string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.Bytes(), nil
}
