// Package index flattens the record store into the generated JSON documents
// the browsing UI fetches: categories.json and sites-<locale>.json.
package index

import (
	"sort"

	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/catalog"
)

// DefaultLocale is the locale projected into the flat sites document.
const DefaultLocale = "en"

// Build aggregates the loaded records into the two derived documents. The
// category counter is rebuilt from scratch on every call so the counts can
// never drift from the store. Output ordering is fully deterministic:
// categories sort by name, entries sort by (category, quality rank, title).
func Build(records []catalog.Record, locale string) (models.CategoriesDoc, []models.SiteEntry) {
	if locale == "" {
		locale = DefaultLocale
	}

	counts := make(map[string]int)
	entries := make([]models.SiteEntry, 0, len(records))

	for _, r := range records {
		site := r.Site
		counts[site.Category]++
		entries = append(entries, project(site, locale))
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if ra, rb := a.Quality.Rank(), b.Quality.Rank(); ra != rb {
			return ra < rb
		}
		return a.Title < b.Title
	})

	doc := models.CategoriesDoc{
		Categories: make([]models.CategoryCount, 0, len(counts)),
		TotalSites: len(entries),
	}
	for name, count := range counts {
		doc.Categories = append(doc.Categories, models.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(doc.Categories, func(i, j int) bool {
		return doc.Categories[i].Name < doc.Categories[j].Name
	})

	return doc, entries
}

// project builds the single-locale view of a record. A missing locale falls
// back to the raw id for the title and an empty description, so drafts that
// only carry other languages still render something identifiable.
func project(site models.Site, locale string) models.SiteEntry {
	title, ok := site.Title.Get(locale)
	if !ok {
		title = site.ID
	}
	description, _ := site.Description.Get(locale)

	return models.SiteEntry{
		ID:          site.ID,
		URL:         site.URL,
		Title:       title,
		Description: description,
		Category:    site.Category,
		Lenses:      site.Lenses,
		Quality:     site.Quality,
		Tags:        site.Tags,
	}
}
