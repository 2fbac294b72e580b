package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nstack-dev/nstack/internal/feature"
	"github.com/nstack-dev/nstack/internal/pm"
	"github.com/nstack-dev/nstack/internal/structure"
	"github.com/nstack-dev/nstack/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Install a feature into the current project",
	Long: `Install a feature into the Next.js project in the current directory.

Run without flags for an interactive selection, or preselect with
--feature (and --provider for drizzle). Run "nstack list" to see the
available features.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("feature", "f", "", "Feature to add (see: nstack list)")
	addCmd.Flags().String("provider", "", "Database provider for the drizzle feature")
	addCmd.Flags().Bool("non-interactive", false, "Skip prompts; use flags and defaults")
}

// runAdd resolves exactly one feature handler and runs it against the
// project in the current directory.
func runAdd(cmd *cobra.Command, _ []string) error {
	theme := ui.NewTheme(ui.ThemeConfig{})
	headless := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		headless.ForceHeadless(true)
	}
	if provider := getStringFlag(cmd, "provider"); provider != "" {
		headless.SetDefault("provider", provider)
	}
	prompter := ui.NewPrompter(theme, headless)

	// Resolve the feature before touching the project so an unknown name
	// fails without side effects.
	selected, err := chooseFeature(cmd, prompter)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	manager, err := pm.Resolve(root)
	if err != nil {
		return err
	}
	layout, err := structure.Detect(root)
	if err != nil {
		return err
	}

	tk := &feature.Toolkit{
		Root:     root,
		PM:       manager,
		Layout:   layout,
		Runner:   pm.NewRunner(),
		Theme:    theme,
		Prompter: prompter,
		Headless: headless,
		Out:      os.Stdout,
	}
	return selected.Run(cmd.Context(), tk)
}

// chooseFeature resolves the feature from the flag or an interactive
// single-select over the registry.
func chooseFeature(cmd *cobra.Command, prompter *ui.Prompter) (feature.Feature, error) {
	if name := getStringFlag(cmd, "feature"); name != "" {
		return feature.Lookup(name)
	}

	registry := feature.Registry()
	options := make([]ui.Option, len(registry))
	for i, f := range registry {
		options[i] = ui.Option{Label: f.Name, Desc: f.Description, Value: f.Name}
	}
	selected, err := prompter.Select("feature", "Select a feature to add", options)
	if err != nil {
		return feature.Feature{}, err
	}
	return feature.Lookup(selected)
}
