// Package review implements the mechanical half of pull-request review: the
// pre-checks that run before any AI is consulted, the reviewer contract, and
// the decision report. Pre-checks are deterministic and cheap; anything they
// flag blocks the AI step entirely.
package review

import (
	"fmt"

	"github.com/pemistahl/lingua-go"

	"github.com/web-atlas/web-atlas/internal/common"
	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/catalog"
)

// ChangedRecord is one record under review, parsed from a changed file.
type ChangedRecord struct {
	Path string
	Site models.Site
	// HeadCheck is the reachability result, "ok: HTTP 200" style, filled in
	// by the caller when URL fetching is enabled.
	HeadCheck string
}

// Precheck runs every mechanical rule against a changed record and returns
// the problems found. An empty result means the record may proceed to the
// reviewer.
type Precheck struct {
	policy   *models.Policy
	urlIndex map[string][]string
	detector lingua.LanguageDetector
}

// NewPrecheck builds a pre-checker over the current store contents. The
// language detector is built once here; constructing it per record is too
// slow for large diffs.
func NewPrecheck(pol *models.Policy, records []catalog.Record) *Precheck {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.German, lingua.French, lingua.Spanish,
			lingua.Portuguese, lingua.Italian, lingua.Japanese, lingua.Chinese,
		).
		Build()

	return &Precheck{
		policy:   pol,
		urlIndex: catalog.URLIndex(records),
		detector: detector,
	}
}

// Run checks a single changed record. selfPath excludes the record's own
// store entry from duplicate detection, so edits to an existing record do not
// flag themselves.
func (p *Precheck) Run(rec ChangedRecord) []string {
	var problems []string
	site := rec.Site

	for _, problem := range site.Validate() {
		problems = append(problems, problem)
	}

	if site.Category != "" && !p.policy.CategoryAllowed(site.Category) {
		problems = append(problems, fmt.Sprintf("category %q is not in the allowed list", site.Category))
	}
	if len(site.Lenses) > p.policy.MaxLenses {
		problems = append(problems, fmt.Sprintf("too many lenses: %d (max %d)", len(site.Lenses), p.policy.MaxLenses))
	}
	for _, lens := range site.Lenses {
		if !p.policy.LensAllowed(lens) {
			problems = append(problems, fmt.Sprintf("lens %q is not in the allowed list", lens))
		}
	}

	if desc, ok := site.Description.Get("en"); ok {
		if len(desc) > p.policy.MaxDescriptionLen {
			problems = append(problems, fmt.Sprintf("description exceeds %d characters (found %d)", p.policy.MaxDescriptionLen, len(desc)))
		}
		if !p.looksEnglish(desc) {
			problems = append(problems, `description under locale "en" does not look like English`)
		}
	}
	if title, ok := site.Title.Get("en"); ok && !p.looksEnglish(title) {
		problems = append(problems, `title under locale "en" does not look like English`)
	}

	if site.URL != "" {
		if common.SuspiciousURL(site.URL) {
			problems = append(problems, fmt.Sprintf("url looks invalid or suspicious: %s", site.URL))
		}
		normalized := catalog.NormalizeURL(site.URL)
		for _, path := range p.urlIndex[normalized] {
			if path != rec.Path {
				problems = append(problems, fmt.Sprintf("duplicate url %s already in %s", site.URL, path))
			}
		}
	}

	return problems
}

// looksEnglish reports whether text detects as English. Short strings carry
// too little signal for the detector, so anything under a few words passes.
func (p *Precheck) looksEnglish(text string) bool {
	if len(text) < 20 {
		return true
	}
	lang, ok := p.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == lingua.English
}
