package ui

import "errors"

// Sentinel errors for the ui package.
var (
	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadlessNoDefault indicates a prompt ran in headless mode
	// without a default value for its key.
	ErrHeadlessNoDefault = errors.New("ui: headless mode requires a default value")
)
