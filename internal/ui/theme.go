// Package ui provides the terminal user interface for nstack: themed
// output, interactive prompts backed by huh, spinners backed by bubbletea,
// and headless fallbacks for non-TTY environments.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ColorPalette holds the hex color values used across UI components.
type ColorPalette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the color palette and rendering preferences.
type Theme struct {
	NoColor bool
	Colors  ColorPalette

	title    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	errStyle lipgloss.Style
	muted    lipgloss.Style
}

// ThemeConfig configures theme construction.
type ThemeConfig struct {
	// NoColor disables all styling. The NO_COLOR environment variable
	// also forces it on.
	NoColor bool
}

// defaultPalette is the nstack color palette.
var defaultPalette = ColorPalette{
	Primary:   "#00BCD4",
	Secondary: "#7C4DFF",
	Success:   "#4CAF50",
	Warning:   "#FFC107",
	Error:     "#F44336",
	Muted:     "#9E9E9E",
}

// NewTheme creates a Theme from the given config.
func NewTheme(cfg ThemeConfig) *Theme {
	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != ""

	t := &Theme{
		NoColor: noColor,
		Colors:  defaultPalette,
	}
	if noColor {
		t.title = lipgloss.NewStyle()
		t.success = lipgloss.NewStyle()
		t.warning = lipgloss.NewStyle()
		t.errStyle = lipgloss.NewStyle()
		t.muted = lipgloss.NewStyle()
		return t
	}

	t.title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	t.success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success)).Bold(true)
	t.warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
	t.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	return t
}

// Title renders s in the title style.
func (t *Theme) Title(s string) string { return t.title.Render(s) }

// Success renders s in the success style.
func (t *Theme) Success(s string) string { return t.success.Render(s) }

// Warning renders s in the warning style.
func (t *Theme) Warning(s string) string { return t.warning.Render(s) }

// Error renders s in the error style.
func (t *Theme) Error(s string) string { return t.errStyle.Render(s) }

// Muted renders s in the muted style.
func (t *Theme) Muted(s string) string { return t.muted.Render(s) }
