package pm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveMarker_RoundTrip(t *testing.T) {
	for _, m := range All {
		t.Run(string(m), func(t *testing.T) {
			root := t.TempDir()

			if err := SaveMarker(root, m); err != nil {
				t.Fatalf("SaveMarker() error = %v", err)
			}

			got, err := LoadMarker(root)
			if err != nil {
				t.Fatalf("LoadMarker() error = %v", err)
			}
			if got != m {
				t.Errorf("LoadMarker() = %v, want %v", got, m)
			}
		})
	}
}

func TestSaveMarker_FileFormat(t *testing.T) {
	root := t.TempDir()

	if err := SaveMarker(root, Pnpm); err != nil {
		t.Fatalf("SaveMarker() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".nstack", "config"))
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(data) != "package_manager=pnpm\n" {
		t.Errorf("marker content = %q, want %q", data, "package_manager=pnpm\n")
	}
}

func TestLoadMarker_Missing(t *testing.T) {
	root := t.TempDir()

	if _, err := LoadMarker(root); err == nil {
		t.Fatal("LoadMarker() expected error for missing marker file")
	}
}

func TestLoadMarker_UnrecognizedValue(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".nstack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte("package_manager=cargo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadMarker(root)
	if !errors.Is(err, ErrUnknownManager) {
		t.Errorf("LoadMarker() error = %v, want ErrUnknownManager", err)
	}
}

func TestLoadMarker_IgnoresUnrelatedLines(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".nstack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "# nstack project state\ncreated=2026-08-29\npackage_manager=bun\n"
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadMarker(root)
	if err != nil {
		t.Fatalf("LoadMarker() error = %v", err)
	}
	if got != Bun {
		t.Errorf("LoadMarker() = %v, want %v", got, Bun)
	}
}

func TestResolve_MarkerWinsOverProbe(t *testing.T) {
	root := t.TempDir()
	if err := SaveMarker(root, Pnpm); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != Pnpm {
		t.Errorf("Resolve() = %v, want %v", got, Pnpm)
	}
}

func TestRunner_InjectedExec(t *testing.T) {
	var gotDir, gotName string
	var gotArgs []string

	r := newRunnerWithExec(func(_ context.Context, dir, name string, args ...string) error {
		gotDir, gotName, gotArgs = dir, name, args
		return nil
	})

	if err := r.Run(context.Background(), "/tmp/proj", "npm", "install", "pg"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if gotDir != "/tmp/proj" || gotName != "npm" {
		t.Errorf("Run() dispatched dir=%q name=%q", gotDir, gotName)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "install" || gotArgs[1] != "pg" {
		t.Errorf("Run() args = %v", gotArgs)
	}
}

func TestResolve_CorruptMarkerSurfacesError(t *testing.T) {
	root := t.TempDir()
	path := MarkerPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("package_manager=cargo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(root)
	if !errors.Is(err, ErrUnknownManager) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownManager", err)
	}
}
