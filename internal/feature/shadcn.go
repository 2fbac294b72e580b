package feature

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nstack-dev/nstack/internal/template"
	"github.com/nstack-dev/nstack/internal/ui"
)

// shadcnDependencies are the runtime packages shadcn/ui components rely on.
var shadcnDependencies = []string{
	"class-variance-authority",
	"clsx",
	"tailwind-merge",
	"lucide-react",
	"tailwindcss-animate",
}

// shadcnCSSMarker decides idempotence of the stylesheet append.
const shadcnCSSMarker = "/* shadcn/ui theme variables */"

// shadcnConfig is the data for rendering components.json.
type shadcnConfig struct {
	GlobalsCSS string
}

// runShadcn installs shadcn/ui: dependencies, components.json,
// the cn helper under the lib dir, and theme variables appended to the
// global stylesheet.
func runShadcn(ctx context.Context, tk *Toolkit) error {
	tk.Printf("%s\n", tk.Theme.Warning(fmt.Sprintf("Using package manager: %s", tk.PM)))

	spin := ui.NewSpinner(tk.Theme, tk.Headless, tk.Out, "Installing shadcn/ui dependencies...")

	cmd, args := tk.PM.InstallArgs(shadcnDependencies...)
	if err := tk.Runner.Run(ctx, tk.Root, cmd, args...); err != nil {
		spin.Stop("")
		return fmt.Errorf("install shadcn/ui dependencies: %w", err)
	}

	spin.SetTitle("Writing shadcn/ui configuration...")

	renderer := template.NewRenderer(assets)
	config, err := renderer.Render("templates/shadcn/components.json", shadcnConfig{
		GlobalsCSS: tk.Layout.GlobalsCSSPath(),
	})
	if err != nil {
		spin.Stop("")
		return err
	}
	if err := writeFile(filepath.Join(tk.Root, "components.json"), config); err != nil {
		spin.Stop("")
		return err
	}

	if err := writeLibUtils(tk); err != nil {
		spin.Stop("")
		return err
	}

	if err := appendGlobalsCSS(tk, shadcnCSSMarker, "templates/shadcn/globals.css"); err != nil {
		spin.Stop("")
		return err
	}

	spin.Stop("shadcn/ui setup completed!")

	tk.Printf("\n%s\n", tk.Theme.Title("Next steps:"))
	tk.Printf("1. Add components with: npx shadcn@latest add button\n")
	tk.Printf("2. Import the cn helper from @/lib/utils\n")
	return nil
}

// writeLibUtils writes the cn class-merge helper under the detected lib dir.
func writeLibUtils(tk *Toolkit) error {
	return writeAsset("templates/shadcn/utils.ts",
		filepath.Join(tk.Root, tk.Layout.LibDir(), "utils.ts"))
}

// appendGlobalsCSS appends an embedded CSS block to the detected global
// stylesheet, skipping the append when marker is already present.
func appendGlobalsCSS(tk *Toolkit, marker, asset string) error {
	block, err := assets.ReadFile(asset)
	if err != nil {
		return fmt.Errorf("read template %s: %w", asset, err)
	}
	cssPath := filepath.Join(tk.Root, tk.Layout.GlobalsCSSPath())
	return appendOnce(cssPath, marker, block)
}
