// Package publish copies the generated index documents from the build output
// directory to the directory the browsing UI fetches from.
package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/web-atlas/web-atlas/pkg/index"
	"github.com/web-atlas/web-atlas/pkg/storage"
)

// Documents returns the filenames a publish run must move for a locale.
func Documents(locale string) []string {
	if locale == "" {
		locale = index.DefaultLocale
	}
	return []string{index.CategoriesFile, index.SitesFile(locale)}
}

// Run copies each generated document from srcDir to dstDir and verifies that
// every destination file parses as JSON afterwards. Any missing source, a run
// that copies nothing, or an unparseable destination aborts: these mean the
// build is broken, not that a retry would help. Returns the destination paths.
func Run(srcDir, dstDir, locale string, s *storage.Storage) ([]string, error) {
	if err := os.MkdirAll(dstDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create publish directory: %w", err)
	}

	var published []string
	for _, name := range Documents(locale) {
		src := filepath.Join(srcDir, name)
		if !s.HasFile(src) {
			return nil, fmt.Errorf("publish source missing: %s (run a build first)", src)
		}
		data, err := s.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src, err)
		}

		dst := filepath.Join(dstDir, name)
		if err := s.SaveFile(dst, data); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", name, err)
		}
		if err := verifyJSON(dst, s); err != nil {
			return nil, err
		}
		published = append(published, dst)
	}

	if len(published) == 0 {
		return nil, fmt.Errorf("publish copied no files from %s", srcDir)
	}
	return published, nil
}

// verifyJSON re-reads a published file and confirms it is valid JSON, so a
// broken copy surfaces here instead of client-side.
func verifyJSON(path string, s *storage.Storage) error {
	data, err := s.ReadFile(path)
	if err != nil {
		return fmt.Errorf("published file unreadable: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("published file %s is not valid JSON: %w", path, err)
	}
	return nil
}
