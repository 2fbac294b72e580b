package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nstack-dev/nstack/internal/feature"
)

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "nstack" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "nstack")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"create", "add", "list"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestValidateCreateFlags(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty flag is fine", value: "", wantErr: false},
		{name: "npm", value: "npm", wantErr: false},
		{name: "bun", value: "bun", wantErr: false},
		{name: "unknown manager", value: "cargo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := createCmd.Flags().Set("package-manager", tt.value); err != nil {
				t.Fatalf("set flag: %v", err)
			}
			defer createCmd.Flags().Set("package-manager", "")

			err := validateCreateFlags(createCmd, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCreateFlags(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestAddCmd_UnknownFeatureFailsWithoutSideEffects(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := addCmd.Flags().Set("feature", "nonexistent"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	defer addCmd.Flags().Set("feature", "")

	err := runAdd(addCmd, nil)
	if err == nil {
		t.Fatal("expected error for unknown feature")
	}
	if !errors.Is(err, feature.ErrUnknownFeature) {
		t.Errorf("error = %v, want ErrUnknownFeature", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("unknown feature should not create files, found %d entries", len(entries))
	}
}

func TestFeatureListMarkdown_CoversRegistry(t *testing.T) {
	doc := featureListMarkdown()

	for _, f := range feature.Registry() {
		if !strings.Contains(doc, f.Name) {
			t.Errorf("listing should mention feature %q", f.Name)
		}
		if !strings.Contains(doc, f.Description) {
			t.Errorf("listing should include description for %q", f.Name)
		}
	}
	if !strings.Contains(doc, "nstack add --feature") {
		t.Error("listing should include the add usage hint")
	}
}

func TestRunList_PlainWriterGetsRawMarkdown(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := runList(buf); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(buf.String(), "# Available features") {
		t.Errorf("plain output should keep the markdown heading, got %q", buf.String())
	}
}
