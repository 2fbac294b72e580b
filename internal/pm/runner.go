package pm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes package manager and generator subprocesses with the
// child's stdio attached to the terminal, since installers may prompt.
// Only the exit status is consumed; output is never parsed.
type Runner interface {
	// Run executes name with args in dir and blocks until the child exits.
	// A non-zero exit is reported as ErrCommandFailed with the command line.
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// execFn is the function signature for executing a subprocess.
// Used for dependency injection in tests.
type execFn func(ctx context.Context, dir string, name string, args ...string) error

// runner implements Runner using os/exec.
type runner struct {
	logger *slog.Logger
	execFn execFn
}

// NewRunner creates a Runner that executes real subprocesses.
func NewRunner() Runner {
	return &runner{logger: slog.Default().With("module", "pm")}
}

// newRunnerWithExec creates a Runner with an injected exec function for tests.
func newRunnerWithExec(fn execFn) Runner {
	return &runner{logger: slog.Default().With("module", "pm"), execFn: fn}
}

// Run executes the subprocess, inheriting stdio.
func (r *runner) Run(ctx context.Context, dir string, name string, args ...string) error {
	r.logger.Debug("running command", "dir", dir, "command", name, "args", args)
	if r.execFn != nil {
		return r.execFn(ctx, dir, name, args...)
	}
	return runAttached(ctx, dir, name, args...)
}

// runAttached resolves the binary and runs it with inherited stdio.
// There is no timeout: installers block until the child exits.
func runAttached(ctx context.Context, dir string, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrCommandFailed, name, strings.Join(args, " "), err)
	}
	return nil
}
