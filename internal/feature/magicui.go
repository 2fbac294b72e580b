package feature

import (
	"context"
	"fmt"

	"github.com/nstack-dev/nstack/internal/ui"
)

// magicuiDependencies are the runtime packages magicui components rely on.
var magicuiDependencies = []string{
	"motion",
	"clsx",
	"tailwind-merge",
}

// magicuiCSSMarker decides idempotence of the stylesheet append.
const magicuiCSSMarker = "/* magicui animations */"

// runMagicUI installs magicui: dependencies, the cn helper under the lib
// dir, and animation keyframes appended to the global stylesheet.
func runMagicUI(ctx context.Context, tk *Toolkit) error {
	tk.Printf("%s\n", tk.Theme.Warning(fmt.Sprintf("Using package manager: %s", tk.PM)))

	spin := ui.NewSpinner(tk.Theme, tk.Headless, tk.Out, "Installing magicui dependencies...")

	cmd, args := tk.PM.InstallArgs(magicuiDependencies...)
	if err := tk.Runner.Run(ctx, tk.Root, cmd, args...); err != nil {
		spin.Stop("")
		return fmt.Errorf("install magicui dependencies: %w", err)
	}

	spin.SetTitle("Writing magicui configuration...")

	if err := writeLibUtils(tk); err != nil {
		spin.Stop("")
		return err
	}

	if err := appendGlobalsCSS(tk, magicuiCSSMarker, "templates/magicui/globals.css"); err != nil {
		spin.Stop("")
		return err
	}

	spin.Stop("magicui setup completed!")

	tk.Printf("\n%s\n", tk.Theme.Title("Next steps:"))
	tk.Printf("1. Browse components at https://magicui.design\n")
	tk.Printf("2. Copy the components you need into your project\n")
	return nil
}
