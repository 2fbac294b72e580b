package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nstack-dev/nstack/internal/pm"
	"github.com/nstack-dev/nstack/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new Next.js project",
	Long: `Create a new Next.js project via create-next-app.

The project name and package manager are prompted for when not given as
flags. The chosen package manager is persisted into the new project's
.nstack/config so later nstack commands reuse it.`,
	Args:    cobra.NoArgs,
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("name", "n", "", "Project name")
	createCmd.Flags().String("package-manager", "", "Package manager: npm, yarn, pnpm, or bun")
	createCmd.Flags().Bool("non-interactive", false, "Skip prompts; use flags and detection")
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if name := getStringFlag(cmd, "package-manager"); name != "" {
		if _, err := pm.Parse(name); err != nil {
			return fmt.Errorf("invalid --package-manager value %q: must be one of: npm, yarn, pnpm, bun", name)
		}
	}
	return nil
}

// runCreate scaffolds a new project and persists the package manager choice.
func runCreate(cmd *cobra.Command, _ []string) error {
	theme := ui.NewTheme(ui.ThemeConfig{})
	headless := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		headless.ForceHeadless(true)
	}
	if name := getStringFlag(cmd, "name"); name != "" {
		headless.SetDefault("project_name", name)
	}
	prompter := ui.NewPrompter(theme, headless)

	projectName, err := prompter.Input("project_name", "Enter project name", "my-app")
	if err != nil {
		return err
	}
	if projectName == "" {
		return fmt.Errorf("project name must not be empty")
	}

	manager, err := chooseManager(cmd, headless, prompter)
	if err != nil {
		return err
	}

	fmt.Println(theme.Title(fmt.Sprintf("Creating Next.js project with %s...", manager)))

	spin := ui.NewSpinner(theme, headless, os.Stdout,
		fmt.Sprintf("Running create-next-app with %s...", manager))

	runner := pm.NewRunner()
	bin, args := manager.CreateAppArgs(projectName)
	if err := runner.Run(cmd.Context(), ".", bin, args...); err != nil {
		spin.Stop("")
		return fmt.Errorf("create Next.js project: %w", err)
	}

	// The marker is only written after the generator succeeded.
	if err := pm.SaveMarker(projectName, manager); err != nil {
		spin.Stop("")
		return err
	}

	spin.Stop("Project created successfully!")

	fmt.Println()
	fmt.Println(theme.Success("Next steps:"))
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  nstack add <feature>")
	return nil
}

// chooseManager picks the package manager from the flag, an interactive
// select, or binary detection when running headless without a flag.
func chooseManager(cmd *cobra.Command, headless *ui.HeadlessManager, prompter *ui.Prompter) (pm.Manager, error) {
	if name := getStringFlag(cmd, "package-manager"); name != "" {
		return pm.Parse(name)
	}
	if headless.IsHeadless() {
		return pm.Detect()
	}

	options := []ui.Option{
		{Label: "npm", Value: string(pm.Npm)},
		{Label: "yarn", Value: string(pm.Yarn)},
		{Label: "pnpm", Value: string(pm.Pnpm)},
		{Label: "bun", Value: string(pm.Bun)},
	}
	selected, err := prompter.Select("package_manager", "Choose your package manager", options)
	if err != nil {
		return "", err
	}
	return pm.Parse(selected)
}
