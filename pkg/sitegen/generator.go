package sitegen

import (
	"fmt"
	"strings"

	"github.com/web-atlas/web-atlas/models"
)

// Generator is the one-shot contract for turning a validated URL into a full
// site record. Precondition: the URL already passed the mechanical submission
// gate. Postcondition: the returned record passes Validate and carries an
// allowed category; Generate never runs before validation has passed.
//
// An AI-backed implementation plugs in here; DraftGenerator is the shipped
// deterministic one built from fetched page metadata.
type Generator interface {
	Generate(url string, meta *PageMeta, pol *models.Policy) (models.Site, error)
}

// DraftGenerator drafts a record from page metadata alone. The category is a
// keyword guess over the page text, falling back to the policy's first
// allowed category, so the result always satisfies the Generator contract.
type DraftGenerator struct{}

// categoryHints pairs lowercase keywords with the allowed category they
// suggest. Order matters: the first matching hint wins, so the guess is
// deterministic. Only hints whose category the policy allows are used.
var categoryHints = []struct {
	keyword  string
	category string
}{
	{"documentation", "Knowledge"},
	{"encyclopedia", "Knowledge"},
	{"wiki", "Knowledge"},
	{"tutorial", "Knowledge"},
	{"learn", "Knowledge"},
	{"news", "News"},
	{"magazine", "News"},
	{"converter", "Tools"},
	{"generator", "Tools"},
	{"editor", "Tools"},
	{"tool", "Tools"},
	{"game", "Entertainment"},
	{"music", "Entertainment"},
	{"video", "Entertainment"},
	{"shop", "Commerce"},
	{"store", "Commerce"},
	{"forum", "Community"},
	{"community", "Community"},
}

func (g *DraftGenerator) Generate(url string, meta *PageMeta, pol *models.Policy) (models.Site, error) {
	if meta == nil {
		meta = &PageMeta{URL: url}
	}

	id := Slug(url)
	if id == "" {
		return models.Site{}, fmt.Errorf("could not derive a slug from %s", url)
	}

	title := meta.Title
	if title == "" {
		title = meta.SiteName
	}
	if title == "" {
		title = id
	}

	description := truncate(meta.Description, pol.MaxDescriptionLen)
	if description == "" {
		description = "Website at " + url
	}

	site := models.Site{
		ID:          id,
		URL:         url,
		Category:    guessCategory(meta, pol),
		Lenses:      []string{},
		Quality:     models.DefaultQuality,
		Title:       models.LocalizedText{"en": title},
		Description: models.LocalizedText{"en": description},
	}

	if problems := site.Validate(); len(problems) > 0 {
		return models.Site{}, fmt.Errorf("generated record is invalid: %s", strings.Join(problems, "; "))
	}
	return site, nil
}

func guessCategory(meta *PageMeta, pol *models.Policy) string {
	haystack := strings.ToLower(meta.Title + " " + meta.Description + " " + meta.SiteName)
	for _, hint := range categoryHints {
		if pol.CategoryAllowed(hint.category) && strings.Contains(haystack, hint.keyword) {
			return hint.category
		}
	}
	return pol.Categories[0]
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut
}
