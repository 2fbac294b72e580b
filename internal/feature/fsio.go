package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeFile writes content to path, creating parent directories as needed.
// Errors carry the target path.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// appendOnce appends block to the file at path unless marker already
// appears in it as a raw substring. The file is created when absent.
func appendOnce(path, marker string, block []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return writeFile(path, block)
	}

	if strings.Contains(string(existing), marker) {
		return nil
	}

	updated := append(existing, []byte("\n\n")...)
	updated = append(updated, block...)
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}
