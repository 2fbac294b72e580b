package pm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
)

// Manager identifies a Node package manager.
type Manager string

const (
	// Npm is the default Node package manager.
	Npm Manager = "npm"

	// Yarn is the Yarn package manager.
	Yarn Manager = "yarn"

	// Pnpm is the pnpm package manager.
	Pnpm Manager = "pnpm"

	// Bun is the Bun runtime's package manager.
	Bun Manager = "bun"
)

// All lists every supported manager in detection preference order.
// Detect probes them in this order; first responsive binary wins.
var All = []Manager{Bun, Pnpm, Yarn, Npm}

// Parse converts a manager name into a Manager.
// Returns ErrUnknownManager for unrecognized names.
func Parse(name string) (Manager, error) {
	switch Manager(name) {
	case Npm, Yarn, Pnpm, Bun:
		return Manager(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManager, name)
}

// String returns the manager's binary name.
func (m Manager) String() string {
	return string(m)
}

// InstallArgs returns the command and arguments that install the given
// packages as runtime dependencies.
func (m Manager) InstallArgs(packages ...string) (string, []string) {
	var args []string
	switch m {
	case Npm:
		args = []string{"install"}
	default:
		args = []string{"add"}
	}
	return string(m), append(args, packages...)
}

// InstallDevArgs returns the command and arguments that install the given
// packages as development dependencies.
func (m Manager) InstallDevArgs(packages ...string) (string, []string) {
	var args []string
	switch m {
	case Npm:
		args = []string{"install", "-D"}
	default:
		args = []string{"add", "-D"}
	}
	return string(m), append(args, packages...)
}

// CreateAppArgs returns the command and arguments that scaffold a new
// Next.js project with the given name.
func (m Manager) CreateAppArgs(projectName string) (string, []string) {
	switch m {
	case Yarn:
		return "yarn", []string{"create", "next-app", projectName}
	case Pnpm:
		return "pnpm", []string{"create", "next-app", projectName}
	case Bun:
		return "bun", []string{"create", "next-app", projectName}
	default:
		return "npx", []string{"create-next-app@latest", projectName}
	}
}

// probeFunc checks whether a manager binary is installed and responsive.
// Overridable for tests.
type probeFunc func(m Manager) bool

// probeBinary runs "<manager> --version" and reports success.
func probeBinary(m Manager) bool {
	bin, err := exec.LookPath(string(m))
	if err != nil {
		return false
	}
	return exec.Command(bin, "--version").Run() == nil
}

// Detect probes installed package manager binaries in preference order
// (bun, pnpm, yarn, npm) and returns the first one that responds to a
// version probe. Returns ErrNoPackageManager when none respond.
func Detect() (Manager, error) {
	return detect(probeBinary)
}

func detect(probe probeFunc) (Manager, error) {
	logger := slog.Default().With("module", "pm")
	for _, m := range All {
		if probe(m) {
			logger.Debug("package manager detected", "manager", m)
			return m, nil
		}
	}
	return "", ErrNoPackageManager
}

// Resolve returns the package manager for the project rooted at root.
// A persisted marker file takes precedence; a missing marker falls back
// to probing installed binaries, but a marker that exists and cannot be
// parsed is an error. The resolver never writes the marker file.
func Resolve(root string) (Manager, error) {
	m, err := LoadMarker(root)
	if err == nil {
		slog.Default().With("module", "pm").Debug("package manager loaded from marker", "manager", m)
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	return Detect()
}
