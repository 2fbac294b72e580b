package feature

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nstack-dev/nstack/internal/template"
	"github.com/nstack-dev/nstack/internal/ui"
)

// migrationsDir is the drizzle-kit migrations output directory. Fixed name,
// independent of project layout.
const migrationsDir = "drizzle"

// examplePath is where the runnable example-usage script goes.
const examplePath = "src/example-usage.ts"

// xataClientPath is where the generated-client placeholder goes.
const xataClientPath = "src/xata.ts"

// drizzleConfig is the data for rendering drizzle.config.ts.
type drizzleConfig struct {
	EnvVar string
	Note   string
}

// runDrizzle installs Drizzle ORM for an interactively chosen database
// provider: dependencies, config, schema, connection code, manifest
// scripts, env template, and example code. The first failed step aborts
// with prior effects left in place.
func runDrizzle(ctx context.Context, tk *Toolkit) error {
	providers, err := Providers()
	if err != nil {
		return err
	}

	tk.Printf("%s\n", tk.Theme.Warning(fmt.Sprintf("Using package manager: %s", tk.PM)))
	tk.Printf("%s\n", tk.Theme.Warning(fmt.Sprintf("Project structure: %s", tk.Layout)))

	options := make([]ui.Option, len(providers))
	for i, p := range providers {
		options[i] = ui.Option{Label: p.Name, Desc: p.Description, Value: p.ID}
	}
	selected, err := tk.Prompter.Select("provider", "Select your database provider", options)
	if err != nil {
		return err
	}
	provider, err := lookupProvider(selected)
	if err != nil {
		return err
	}

	tk.Printf("%s\n", tk.Theme.Success("Selected: "+provider.Name))

	spin := ui.NewSpinner(tk.Theme, tk.Headless, tk.Out,
		fmt.Sprintf("Installing Drizzle ORM dependencies for %s...", provider.Name))

	// Runtime deps and dev deps are separate installs so a failure names
	// the dependency set that broke.
	cmd, args := tk.PM.InstallArgs(provider.Dependencies...)
	if err := tk.Runner.Run(ctx, tk.Root, cmd, args...); err != nil {
		spin.Stop("")
		return fmt.Errorf("install Drizzle ORM dependencies for %s: %w", provider.Name, err)
	}

	cmd, args = tk.PM.InstallDevArgs(provider.DevDependencies...)
	if err := tk.Runner.Run(ctx, tk.Root, cmd, args...); err != nil {
		spin.Stop("")
		return fmt.Errorf("install Drizzle dev dependencies for %s: %w", provider.Name, err)
	}

	spin.SetTitle("Setting up Drizzle configuration...")

	renderer := template.NewRenderer(assets)
	config, err := renderer.Render("templates/drizzle/drizzle.config.ts.tmpl", drizzleConfig{
		EnvVar: provider.EnvVar,
		Note:   provider.ConfigNote,
	})
	if err != nil {
		spin.Stop("")
		return err
	}
	if err := writeFile(filepath.Join(tk.Root, "drizzle.config.ts"), config); err != nil {
		spin.Stop("")
		return err
	}

	spin.SetTitle("Creating database schema and configuration...")

	dbDir := filepath.Join(tk.Root, tk.Layout.DBDir())
	if err := writeAsset(provider.schemaTemplate(), filepath.Join(dbDir, "schema.ts")); err != nil {
		spin.Stop("")
		return err
	}
	if err := writeAsset(provider.connectionTemplate(), filepath.Join(dbDir, "index.ts")); err != nil {
		spin.Stop("")
		return err
	}

	if err := os.MkdirAll(filepath.Join(tk.Root, migrationsDir), 0o755); err != nil {
		spin.Stop("")
		return fmt.Errorf("create migrations directory: %w", err)
	}

	spin.SetTitle("Updating package.json scripts...")

	if _, err := patchManifestScripts(tk.Root); err != nil {
		spin.Stop("")
		return err
	}

	spin.SetTitle("Creating environment variables template...")

	envBlock, err := assets.ReadFile(provider.envTemplate())
	if err != nil {
		spin.Stop("")
		return fmt.Errorf("read env template: %w", err)
	}
	if err := appendOnce(filepath.Join(tk.Root, ".env"), provider.EnvVar, envBlock); err != nil {
		spin.Stop("")
		return err
	}

	apiPath := filepath.Join(tk.Root, tk.Layout.APIRoutePath())
	if err := writeAsset(provider.apiRouteTemplate(tk.Layout.IsAppRouter()), apiPath); err != nil {
		spin.Stop("")
		return err
	}

	if err := writeAsset(provider.exampleTemplate(), filepath.Join(tk.Root, examplePath)); err != nil {
		spin.Stop("")
		return err
	}

	if provider.NeedsClient {
		if err := writeAsset("templates/drizzle/xata.ts", filepath.Join(tk.Root, xataClientPath)); err != nil {
			spin.Stop("")
			return err
		}
	}

	spin.Stop(fmt.Sprintf("Drizzle ORM setup completed for %s!", provider.Name))
	printDrizzleSummary(tk, provider)
	return nil
}

// writeAsset copies an embedded template verbatim to dst.
func writeAsset(name, dst string) error {
	content, err := assets.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read template %s: %w", name, err)
	}
	return writeFile(dst, content)
}

// printDrizzleSummary prints the files created and the next manual steps.
// Presentation only.
func printDrizzleSummary(tk *Toolkit, p Provider) {
	tk.Printf("\n%s\n", tk.Theme.Success(fmt.Sprintf("Drizzle ORM has been successfully set up for %s!", p.Name)))

	tk.Printf("\n%s\n", tk.Theme.Title("Next steps:"))
	tk.Printf("1. Update your %s in .env\n", p.EnvVar)
	tk.Printf("2. Run '%s run db:push' to push the schema to your database\n", tk.PM)
	tk.Printf("3. Run '%s run db:generate' to generate migrations\n", tk.PM)
	tk.Printf("4. Run '%s run db:studio' to open Drizzle Studio\n", tk.PM)
	tk.Printf("5. Test with: npx tsx %s\n", examplePath)
	if p.NeedsClient {
		tk.Printf("6. Generate the Xata client: npx xata codegen\n")
		tk.Printf("7. Update %s with your Xata configuration\n", xataClientPath)
	}

	tk.Printf("\n%s\n", tk.Theme.Title("Files created:"))
	tk.Printf("- drizzle.config.ts - Drizzle configuration\n")
	tk.Printf("- %s/schema.ts - Database schema\n", tk.Layout.DBDir())
	tk.Printf("- %s/index.ts - Database connection\n", tk.Layout.DBDir())
	tk.Printf("- %s - Example API route\n", tk.Layout.APIRoutePath())
	tk.Printf("- %s - Example usage file\n", examplePath)
	tk.Printf("- .env - Environment variables template\n")
	if p.NeedsClient {
		tk.Printf("- %s - Xata client placeholder (needs configuration)\n", xataClientPath)
	}

	tk.Printf("\n%s\n", tk.Theme.Title("Provider-specific details:"))
	tk.Printf("- Database: %s\n", p.Name)
	tk.Printf("- Connection: %s\n", p.Driver)
}
