package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Option is a single selectable entry in a select prompt.
type Option struct {
	Label string // Display name.
	Desc  string // Optional one-line description shown after the label.
	Value string // Value returned when the option is chosen.
}

// Prompter runs interactive prompts, falling back to stored defaults in
// headless mode.
type Prompter struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewPrompter creates a Prompter backed by the given theme and headless manager.
func NewPrompter(theme *Theme, hm *HeadlessManager) *Prompter {
	return &Prompter{theme: theme, headless: hm}
}

// Select presents a single-select prompt. Options keep their given order
// and the first entry is pre-selected. A stored default for key (set from
// a CLI flag) short-circuits the prompt; in headless mode a missing
// default is an error. Each prompt runs as its own huh.Form (one question
// per form).
func (p *Prompter) Select(key, title string, options []Option) (string, error) {
	if v, ok := p.headless.GetDefault(key); ok {
		return v, nil
	}
	if p.headless.IsHeadless() {
		return "", fmt.Errorf("%w: %s", ErrHeadlessNoDefault, key)
	}

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Desc != "" {
			label = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&selected),
	)).WithTheme(p.huhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt %q: %w", key, err)
	}
	return selected, nil
}

// Input presents a free-text input prompt. A stored default for key
// short-circuits the prompt; in headless mode a missing default is an error.
func (p *Prompter) Input(key, title, placeholder string) (string, error) {
	if v, ok := p.headless.GetDefault(key); ok {
		return v, nil
	}
	if p.headless.IsHeadless() {
		return "", fmt.Errorf("%w: %s", ErrHeadlessNoDefault, key)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(&value),
	)).WithTheme(p.huhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt %q: %w", key, err)
	}
	return value, nil
}

// huhTheme derives a huh theme from the nstack palette.
func (p *Prompter) huhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if p.theme.NoColor {
		return t
	}

	primary := lipgloss.Color(p.theme.Colors.Primary)
	secondary := lipgloss.Color(p.theme.Colors.Secondary)

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Blurred.Title = t.Blurred.Title.Foreground(primary)
	return t
}
