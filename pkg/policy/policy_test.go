package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePolicy(t, `
categories:
  - Knowledge
  - Tools
lenses:
  - open-source
max_description_length: 120
max_lenses: 3
rejection_criteria:
  - spam or junk content
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(p.Categories) != 2 {
		t.Errorf("got %d categories, want 2", len(p.Categories))
	}
	if p.MaxDescriptionLen != 120 {
		t.Errorf("MaxDescriptionLen = %d, want 120", p.MaxDescriptionLen)
	}
	if p.MaxLenses != 3 {
		t.Errorf("MaxLenses = %d, want 3", p.MaxLenses)
	}
	if !p.CategoryAllowed("Tools") {
		t.Error(`CategoryAllowed("Tools") = false`)
	}
	if p.CategoryAllowed("tools") {
		t.Error("category matching must be case sensitive")
	}
	if !p.LensAllowed("open-source") {
		t.Error(`LensAllowed("open-source") = false`)
	}
	if p.LensAllowed("made-up") {
		t.Error(`LensAllowed("made-up") = true`)
	}
}

func TestLoad_LimitDefaults(t *testing.T) {
	path := writePolicy(t, "categories:\n  - Knowledge\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.MaxDescriptionLen != defaultMaxDescriptionLen {
		t.Errorf("MaxDescriptionLen = %d, want default %d", p.MaxDescriptionLen, defaultMaxDescriptionLen)
	}
	if p.MaxLenses != defaultMaxLenses {
		t.Errorf("MaxLenses = %d, want default %d", p.MaxLenses, defaultMaxLenses)
	}
}

func TestLoad_NoCategories(t *testing.T) {
	path := writePolicy(t, "lenses:\n  - open-source\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail when the policy defines no categories")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load() should fail on a missing file")
	}
}
