// Package structure detects the layout convention of a generated Next.js
// project (app/-rooted vs src/-rooted) and derives the filesystem paths
// feature handlers write to. Detection inspects the project root once per
// invocation; the path accessors are pure.
package structure

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Layout identifies the root-relative layout convention of a project.
type Layout int

const (
	// AppDir is an app/-rooted project layout.
	AppDir Layout = iota

	// SrcDir is a src/-rooted project layout.
	SrcDir
)

// String returns the layout's human-readable name.
func (l Layout) String() string {
	if l == AppDir {
		return "app"
	}
	return "src"
}

// Detect inspects the project rooted at root and returns its layout.
// app/ is checked first and wins when both directories exist.
// Returns ErrNotDetected when neither app/ nor src/ exists.
func Detect(root string) (Layout, error) {
	logger := slog.Default().With("module", "structure")

	if dirExists(filepath.Join(root, "app")) {
		logger.Debug("layout detected", "layout", "app")
		return AppDir, nil
	}
	if dirExists(filepath.Join(root, "src")) {
		logger.Debug("layout detected", "layout", "src")
		return SrcDir, nil
	}
	return 0, ErrNotDetected
}

// GlobalsCSSPath returns the root-relative path of the global stylesheet.
func (l Layout) GlobalsCSSPath() string {
	if l == AppDir {
		return "app/globals.css"
	}
	return "src/app/globals.css"
}

// LibDir returns the root-relative directory for shared library code.
func (l Layout) LibDir() string {
	if l == AppDir {
		return "lib"
	}
	return "src/lib"
}

// DBDir returns the root-relative directory for database schema and
// connection files.
func (l Layout) DBDir() string {
	if l == AppDir {
		return "db"
	}
	return "src/db"
}

// APIRoutePath returns the root-relative path of the example API route.
// App-router projects use a route handler, pages-router projects use an
// API page.
func (l Layout) APIRoutePath() string {
	if l.IsAppRouter() {
		return "src/app/api/users/route.ts"
	}
	return "src/pages/api/users.ts"
}

// IsAppRouter reports whether the layout uses the Next.js app router.
func (l Layout) IsAppRouter() bool {
	return l == AppDir
}

// dirExists checks if a path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
