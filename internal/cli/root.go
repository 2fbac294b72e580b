// Package cli wires the nstack command tree: create, add, and list.
// Each command resolves its collaborators (package manager, project
// structure, UI) once at the start of a run and passes them down
// explicitly; there is no shared mutable state between invocations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nstack-dev/nstack/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "nstack",
	Short: "nstack: scaffold Next.js projects and install batteries",
	Long: `nstack creates Next.js projects through create-next-app and installs
features into them: UI component libraries (shadcn/ui, magicui) and
Drizzle ORM preconfigured for your database provider.

The package manager chosen at creation time is remembered in the
project's .nstack/config and reused by later commands.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("nstack %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
