// Package catalog reads the record store: one directory per site under the
// store root, each holding a site.yml record.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/web-atlas/web-atlas/models"
)

// RecordFile is the conventional record filename inside each site directory.
const RecordFile = "site.yml"

// Warning describes a record that was skipped without failing the load.
type Warning struct {
	Path   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Reason)
}

// Record is one parsed site record together with its on-disk location.
type Record struct {
	Path string
	Site models.Site
}

// Load walks the store root and parses every site.yml it finds. Malformed or
// incomplete records produce warnings and are skipped; one broken record never
// blocks the rest of the catalog. The returned records are ordered by path so
// repeated loads of an unchanged store are identical.
func Load(root string) ([]Record, []Warning, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read store root: %w", err)
	}

	var records []Record
	var warnings []Warning

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		path := filepath.Join(root, d.Name(), RecordFile)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			warnings = append(warnings, Warning{Path: path, Reason: "directory has no " + RecordFile})
			continue
		}
		if err != nil {
			warnings = append(warnings, Warning{Path: path, Reason: fmt.Sprintf("unreadable: %v", err)})
			continue
		}

		var site models.Site
		if err := yaml.Unmarshal(data, &site); err != nil {
			warnings = append(warnings, Warning{Path: path, Reason: fmt.Sprintf("YAML parse error: %v", err)})
			continue
		}
		if missing := site.MissingRequired(); len(missing) > 0 {
			warnings = append(warnings, Warning{Path: path, Reason: fmt.Sprintf("missing required fields: %v", missing)})
			continue
		}
		site.Normalize()
		records = append(records, Record{Path: path, Site: site})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, warnings, nil
}

// URLIndex maps each normalized record URL to the paths holding it. Used for
// duplicate detection during submission processing.
func URLIndex(records []Record) map[string][]string {
	index := make(map[string][]string)
	for _, r := range records {
		u := NormalizeURL(r.Site.URL)
		if u == "" {
			continue
		}
		index[u] = append(index[u], r.Path)
	}
	return index
}

// Save writes a site record to its directory under root, creating the
// directory if needed. Records are mutated only by full-file replacement.
func Save(root string, site models.Site) (string, error) {
	dir := filepath.Join(root, site.ID)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create site directory: %w", err)
	}
	data, err := yaml.Marshal(site)
	if err != nil {
		return "", fmt.Errorf("failed to marshal site record: %w", err)
	}
	path := filepath.Join(dir, RecordFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write site record: %w", err)
	}
	return path, nil
}
