package index

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/catalog"
	"github.com/web-atlas/web-atlas/pkg/storage"
)

func TestWrite_ProducesBothDocuments(t *testing.T) {
	records := []catalog.Record{
		record("a", "https://a.example", "Tools", models.QualitySolid, "Alpha"),
	}
	doc, entries := Build(records, "en")

	outDir := filepath.Join(t.TempDir(), "dist", "nested")
	written, err := Write(outDir, doc, entries, "en", &storage.Storage{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2", len(written))
	}

	catData, err := os.ReadFile(filepath.Join(outDir, CategoriesFile))
	if err != nil {
		t.Fatalf("failed to read categories document: %v", err)
	}
	var gotDoc models.CategoriesDoc
	if err := json.Unmarshal(catData, &gotDoc); err != nil {
		t.Fatalf("categories document is not valid JSON: %v", err)
	}
	if gotDoc.TotalSites != 1 {
		t.Errorf("totalSites = %d, want 1", gotDoc.TotalSites)
	}

	sitesData, err := os.ReadFile(filepath.Join(outDir, SitesFile("en")))
	if err != nil {
		t.Fatalf("failed to read sites document: %v", err)
	}
	var gotEntries []models.SiteEntry
	if err := json.Unmarshal(sitesData, &gotEntries); err != nil {
		t.Fatalf("sites document is not valid JSON: %v", err)
	}
	if len(gotEntries) != 1 || gotEntries[0].ID != "a" {
		t.Errorf("unexpected sites document content: %+v", gotEntries)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	records := []catalog.Record{
		record("a", "https://a.example", "Tools", models.QualityExceptional, "Zeta"),
		record("b", "https://b.example", "Tools", models.QualitySolid, "Alpha"),
		record("c", "https://c.example", "News", models.QualitySolid, "Beta"),
	}
	s := &storage.Storage{}

	dirs := []string{filepath.Join(t.TempDir(), "one"), filepath.Join(t.TempDir(), "two")}
	for _, dir := range dirs {
		doc, entries := Build(records, "en")
		if _, err := Write(dir, doc, entries, "en", s); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	for _, name := range []string{CategoriesFile, SitesFile("en")} {
		first, err := os.ReadFile(filepath.Join(dirs[0], name))
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		second, err := os.ReadFile(filepath.Join(dirs[1], name))
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("%s differs between identical builds", name)
		}
	}
}

func TestWrite_TrailingNewline(t *testing.T) {
	doc, entries := Build(nil, "en")

	outDir := t.TempDir()
	if _, err := Write(outDir, doc, entries, "en", &storage.Storage{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, CategoriesFile))
	if err != nil {
		t.Fatalf("failed to read categories document: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("categories document should end with a newline")
	}
}
