// Package pm resolves and drives the Node package manager used by the
// target project. It detects installed managers, remembers the choice made
// at project creation via the .nstack marker file, and produces the literal
// install/scaffold command invocations for each manager.
package pm

import "errors"

// Sentinel errors for the pm package.
var (
	// ErrNoPackageManager indicates none of the candidate binaries
	// (bun, pnpm, yarn, npm) responded to a version probe.
	ErrNoPackageManager = errors.New("pm: no package manager found, install npm, yarn, pnpm, or bun")

	// ErrUnknownManager indicates an unrecognized package manager name.
	ErrUnknownManager = errors.New("pm: unknown package manager")

	// ErrCommandFailed indicates a package manager subprocess exited non-zero.
	ErrCommandFailed = errors.New("pm: command failed")
)
