package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/storage"
)

// CategoriesFile is the filename of the categories document.
const CategoriesFile = "categories.json"

// SitesFile returns the filename of the flat sites document for a locale.
func SitesFile(locale string) string {
	return fmt.Sprintf("sites-%s.json", locale)
}

// Write serializes both documents into outDir, creating it if needed.
// Serialization is indented two-space JSON with a trailing newline so the
// generated files diff cleanly. Returns the written paths.
func Write(outDir string, doc models.CategoriesDoc, entries []models.SiteEntry, locale string, s *storage.Storage) ([]string, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, 2)
	for _, out := range []struct {
		name string
		v    any
	}{
		{CategoriesFile, doc},
		{SitesFile(locale), entries},
	} {
		data, err := json.MarshalIndent(out.v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", out.name, err)
		}
		data = append(data, '\n')

		path := filepath.Join(outDir, out.name)
		if err := s.SaveFile(path, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", out.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
