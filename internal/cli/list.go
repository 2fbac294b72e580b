package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nstack-dev/nstack/internal/feature"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(out io.Writer) error {
	doc := featureListMarkdown()

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, err := renderer.Render(doc); err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
		// Fall through to plain output when rendering is unavailable.
	}
	fmt.Fprint(out, doc)
	return nil
}

// featureListMarkdown builds the registry listing as a markdown document.
func featureListMarkdown() string {
	var b strings.Builder
	b.WriteString("# Available features\n\n")
	for _, f := range feature.Registry() {
		fmt.Fprintf(&b, "- **%s**: %s\n", f.Name, f.Description)
	}
	b.WriteString("\nUsage:\n\n")
	b.WriteString("```\nnstack add --feature <feature-name>\nnstack add    # interactive selection\n```\n")
	return b.String()
}
