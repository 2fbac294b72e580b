package feature

import (
	"context"
	"fmt"
	"io"

	"github.com/nstack-dev/nstack/internal/pm"
	"github.com/nstack-dev/nstack/internal/structure"
	"github.com/nstack-dev/nstack/internal/ui"
)

// Toolkit carries everything a feature handler needs, resolved once at the
// start of the add command. There is no global state: handlers receive the
// toolkit explicitly.
type Toolkit struct {
	// Root is the project root directory (the add command's working dir).
	Root string

	// PM is the resolved package manager.
	PM pm.Manager

	// Layout is the detected project structure.
	Layout structure.Layout

	// Runner executes package manager subprocesses.
	Runner pm.Runner

	// Theme styles terminal output.
	Theme *ui.Theme

	// Prompter runs interactive prompts (provider selection).
	Prompter *ui.Prompter

	// Headless gates spinner and prompt behavior.
	Headless *ui.HeadlessManager

	// Out receives human-readable progress and summary output.
	Out io.Writer
}

// Printf writes formatted output to the toolkit's output stream.
func (tk *Toolkit) Printf(format string, args ...any) {
	fmt.Fprintf(tk.Out, format, args...)
}

// Feature is a single installable feature.
type Feature struct {
	// Name is the registry key, matched case-sensitively.
	Name string

	// Description is the one-line summary shown by list and prompts.
	Description string

	// Run executes the feature handler. Handlers are independent and
	// fallible; the first failure aborts the add command with prior
	// effects left in place.
	Run func(ctx context.Context, tk *Toolkit) error
}

// registry is the closed, ordered feature set. Ordering is the prompt
// ordering; the first entry is the default selection.
var registry = []Feature{
	{
		Name:        "shadcn",
		Description: "Add shadcn/ui components and configuration",
		Run:         runShadcn,
	},
	{
		Name:        "magicui",
		Description: "Add magicui components and configuration",
		Run:         runMagicUI,
	},
	{
		Name:        "drizzle",
		Description: "Add Drizzle ORM with a database provider of your choice",
		Run:         runDrizzle,
	},
}

// Registry returns the feature set in stable order.
func Registry() []Feature {
	out := make([]Feature, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a feature by name, matching case-sensitively.
// Returns ErrUnknownFeature when the name is not registered.
func Lookup(name string) (Feature, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}
