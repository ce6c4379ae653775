// Package models defines data structures shared across the atlas toolchain.
package models

// Quality is the ordinal quality band assigned to a catalog entry.
type Quality string

const (
	QualityExceptional Quality = "exceptional"
	QualitySolid       Quality = "solid"
	QualityNiche       Quality = "niche"
)

// DefaultQuality is assumed when a record omits the quality field.
const DefaultQuality = QualitySolid

var qualityRanks = map[Quality]int{
	QualityExceptional: 0,
	QualitySolid:       1,
	QualityNiche:       2,
}

// Rank returns the sort rank of a quality band. Unknown values sort after
// every known band so malformed data never floats to the top.
func (q Quality) Rank() int {
	if r, ok := qualityRanks[q]; ok {
		return r
	}
	return len(qualityRanks)
}

// Valid reports whether q is one of the three known bands.
func (q Quality) Valid() bool {
	_, ok := qualityRanks[q]
	return ok
}

// LocalizedText maps a locale code ("en", "de", ...) to a translated string.
type LocalizedText map[string]string

// Get returns the text for locale, or ("", false) when absent.
func (t LocalizedText) Get(locale string) (string, bool) {
	s, ok := t[locale]
	return s, ok
}

// Site is one catalog record, stored as sites/<slug>/site.yml.
type Site struct {
	ID          string        `yaml:"id" json:"id"`
	URL         string        `yaml:"url" json:"url"`
	Category    string        `yaml:"category" json:"category"`
	Lenses      []string      `yaml:"lenses,omitempty" json:"lenses"`
	Quality     Quality       `yaml:"quality,omitempty" json:"quality"`
	Title       LocalizedText `yaml:"title" json:"title"`
	Description LocalizedText `yaml:"description" json:"description"`
	Tags        []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Normalize fills in defaults that the YAML layer leaves empty.
func (s *Site) Normalize() {
	if s.Quality == "" {
		s.Quality = DefaultQuality
	}
	if s.Lenses == nil {
		s.Lenses = []string{}
	}
}

// MissingRequired returns the required fields (id, url, category) the record
// lacks. A record missing any of them is excluded from generated output but
// never aborts a build.
func (s *Site) MissingRequired() []string {
	var missing []string
	if s.ID == "" {
		missing = append(missing, "id")
	}
	if s.URL == "" {
		missing = append(missing, "url")
	}
	if s.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// Validate returns every problem a submission reviewer would flag. This is
// stricter than the build gate: builds only require id, url and category.
func (s *Site) Validate() []string {
	var problems []string
	for _, f := range s.MissingRequired() {
		problems = append(problems, "missing required field: "+f)
	}
	if len(s.Title) == 0 {
		problems = append(problems, "title has no locales")
	}
	if len(s.Description) == 0 {
		problems = append(problems, "description has no locales")
	}
	if s.Quality != "" && !s.Quality.Valid() {
		problems = append(problems, "quality must be exceptional, solid or niche")
	}
	return problems
}
