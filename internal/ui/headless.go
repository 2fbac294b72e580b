package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager manages headless (non-interactive) mode detection
// and default values for prompts running without a TTY.
type HeadlessManager struct {
	forced   *bool
	defaults map[string]string
}

// NewHeadlessManager creates a HeadlessManager that detects
// headless mode from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when prompts should not be shown.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetDefaults stores default values used in headless mode, keyed by the
// prompt key (e.g. "feature", "provider", "package_manager").
func (h *HeadlessManager) SetDefaults(defaults map[string]string) {
	if len(defaults) == 0 {
		h.defaults = nil
		return
	}
	h.defaults = make(map[string]string, len(defaults))
	maps.Copy(h.defaults, defaults)
}

// SetDefault stores a single default value.
func (h *HeadlessManager) SetDefault(key, value string) {
	if h.defaults == nil {
		h.defaults = make(map[string]string)
	}
	h.defaults[key] = value
}

// GetDefault retrieves a default value by key. The second return value
// indicates whether the key was found.
func (h *HeadlessManager) GetDefault(key string) (string, bool) {
	if h.defaults == nil {
		return "", false
	}
	v, ok := h.defaults[key]
	return v, ok
}
