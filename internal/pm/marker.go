package pm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// markerDir is the per-project dotfolder holding nstack state.
const markerDir = ".nstack"

// markerFile is the file inside markerDir recording the chosen manager.
const markerFile = "config"

// markerKey is the key of the package manager line in the marker file.
const markerKey = "package_manager"

// MarkerPath returns the marker file path for the project rooted at root.
func MarkerPath(root string) string {
	return filepath.Join(root, markerDir, markerFile)
}

// LoadMarker reads the persisted package manager choice for the project
// rooted at root. Returns an error when the marker file is missing or does
// not contain a recognized package_manager entry.
func LoadMarker(root string) (Manager, error) {
	path := MarkerPath(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read marker %s: %w", path, err)
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found || key != markerKey {
			continue
		}
		return Parse(strings.TrimSpace(value))
	}

	return "", fmt.Errorf("marker %s: %w: no %s entry", path, ErrUnknownManager, markerKey)
}

// SaveMarker persists the chosen package manager into the project's marker
// file, creating the dotfolder when needed. Called by the create command
// after the scaffold generator succeeds.
func SaveMarker(root string, m Manager) error {
	dir := filepath.Join(root, markerDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create marker dir %s: %w", dir, err)
	}

	content := fmt.Sprintf("%s=%s\n", markerKey, m)
	path := filepath.Join(dir, markerFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write marker %s: %w", path, err)
	}
	return nil
}
