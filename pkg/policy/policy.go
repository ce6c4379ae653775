// Package policy loads the curation policy consumed by the review and
// generation pipelines.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/web-atlas/web-atlas/models"
)

// DefaultPath is the conventional in-repo location of the policy file.
const DefaultPath = "ai/policy.yml"

const (
	defaultMaxDescriptionLen = 160
	defaultMaxLenses         = 4
)

// Load reads and parses the policy file, filling in limit defaults.
func Load(path string) (*models.Policy, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var p models.Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	if len(p.Categories) == 0 {
		return nil, fmt.Errorf("policy file %s defines no categories", path)
	}
	if p.MaxDescriptionLen <= 0 {
		p.MaxDescriptionLen = defaultMaxDescriptionLen
	}
	if p.MaxLenses <= 0 {
		p.MaxLenses = defaultMaxLenses
	}
	return &p, nil
}
