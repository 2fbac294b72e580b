package structure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		dirs    []string
		want    Layout
		wantErr bool
	}{
		{"app only", []string{"app"}, AppDir, false},
		{"src only", []string{"src"}, SrcDir, false},
		{"app wins over src", []string{"app", "src"}, AppDir, false},
		{"neither", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, dir := range tt.dirs {
				if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := Detect(root)
			if tt.wantErr {
				if !errors.Is(err, ErrNotDetected) {
					t.Fatalf("Detect() error = %v, want ErrNotDetected", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_FileNamedAppIsNotADirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "app"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Detect(root)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got != SrcDir {
		t.Errorf("Detect() = %v, want SrcDir", got)
	}
}

func TestLayout_Paths(t *testing.T) {
	tests := []struct {
		layout      Layout
		globalsCSS  string
		libDir      string
		dbDir       string
		apiRoute    string
		isAppRouter bool
	}{
		{AppDir, "app/globals.css", "lib", "db", "src/app/api/users/route.ts", true},
		{SrcDir, "src/app/globals.css", "src/lib", "src/db", "src/pages/api/users.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			if got := tt.layout.GlobalsCSSPath(); got != tt.globalsCSS {
				t.Errorf("GlobalsCSSPath() = %q, want %q", got, tt.globalsCSS)
			}
			if got := tt.layout.LibDir(); got != tt.libDir {
				t.Errorf("LibDir() = %q, want %q", got, tt.libDir)
			}
			if got := tt.layout.DBDir(); got != tt.dbDir {
				t.Errorf("DBDir() = %q, want %q", got, tt.dbDir)
			}
			if got := tt.layout.APIRoutePath(); got != tt.apiRoute {
				t.Errorf("APIRoutePath() = %q, want %q", got, tt.apiRoute)
			}
			if got := tt.layout.IsAppRouter(); got != tt.isAppRouter {
				t.Errorf("IsAppRouter() = %v, want %v", got, tt.isAppRouter)
			}
		})
	}
}
