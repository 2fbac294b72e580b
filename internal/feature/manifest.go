package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// drizzleScriptsMarker is the key whose presence means the scripts were
// already inserted; a second run must not insert them again.
const drizzleScriptsMarker = `"db:generate"`

// drizzleScriptsBlock is inserted right after the scripts-section opener.
const drizzleScriptsBlock = `"scripts": {
    "db:generate": "drizzle-kit generate",
    "db:migrate": "drizzle-kit migrate",
    "db:studio": "drizzle-kit studio",
    "db:push": "drizzle-kit push",`

// patchManifestScripts adds the drizzle-kit script entries to the project's
// package.json by textual substitution on the scripts-section opener.
// If the opener is formatted unexpectedly no insertion happens and no
// error is reported. Returns whether an insertion was made.
func patchManifestScripts(root string) (bool, error) {
	path := filepath.Join(root, "package.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	content := string(data)
	if strings.Contains(content, drizzleScriptsMarker) {
		return false, nil
	}

	updated := strings.Replace(content, `"scripts": {`, drizzleScriptsBlock, 1)
	if updated == content {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
