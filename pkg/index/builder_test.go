package index

import (
	"testing"

	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/catalog"
)

func record(id, url, category string, quality models.Quality, titleEN string) catalog.Record {
	site := models.Site{
		ID:          id,
		URL:         url,
		Category:    category,
		Quality:     quality,
		Title:       models.LocalizedText{"en": titleEN},
		Description: models.LocalizedText{"en": "About " + titleEN},
	}
	site.Normalize()
	return catalog.Record{Path: "sites/" + id + "/site.yml", Site: site}
}

func TestBuild_CategoryCountsAndOrdering(t *testing.T) {
	records := []catalog.Record{
		record("a", "https://a.example", "Tools", models.QualityExceptional, "Zeta"),
		record("b", "https://b.example", "Tools", models.QualitySolid, "Alpha"),
		record("c", "https://c.example", "News", models.QualitySolid, "Beta"),
	}

	doc, entries := Build(records, "en")

	if doc.TotalSites != 3 {
		t.Errorf("TotalSites = %d, want 3", doc.TotalSites)
	}
	wantCategories := []models.CategoryCount{
		{Name: "News", Count: 1},
		{Name: "Tools", Count: 2},
	}
	if len(doc.Categories) != len(wantCategories) {
		t.Fatalf("got %d categories, want %d", len(doc.Categories), len(wantCategories))
	}
	for i, want := range wantCategories {
		if doc.Categories[i] != want {
			t.Errorf("categories[%d] = %+v, want %+v", i, doc.Categories[i], want)
		}
	}

	// News/Beta first, then Tools sorted by quality: exceptional Zeta before
	// solid Alpha.
	wantOrder := []string{"Beta", "Zeta", "Alpha"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if entries[i].Title != want {
			t.Errorf("entries[%d].Title = %q, want %q", i, entries[i].Title, want)
		}
	}
}

func TestBuild_QualityOrderingWithinCategory(t *testing.T) {
	records := []catalog.Record{
		record("n", "https://n.example", "Tools", models.QualityNiche, "Aaa"),
		record("s", "https://s.example", "Tools", models.QualitySolid, "Bbb"),
		record("e", "https://e.example", "Tools", models.QualityExceptional, "Ccc"),
	}

	_, entries := Build(records, "en")

	wantOrder := []models.Quality{models.QualityExceptional, models.QualitySolid, models.QualityNiche}
	for i, want := range wantOrder {
		if entries[i].Quality != want {
			t.Errorf("entries[%d].Quality = %q, want %q", i, entries[i].Quality, want)
		}
	}
}

func TestBuild_TitleTieBreak(t *testing.T) {
	records := []catalog.Record{
		record("z", "https://z.example", "Tools", models.QualitySolid, "Zulu"),
		record("a", "https://a.example", "Tools", models.QualitySolid, "Alpha"),
	}

	_, entries := Build(records, "en")

	if entries[0].Title != "Alpha" || entries[1].Title != "Zulu" {
		t.Errorf("tie break by title failed: got [%q, %q]", entries[0].Title, entries[1].Title)
	}
}

func TestBuild_LocaleFallback(t *testing.T) {
	site := models.Site{
		ID:          "nur-deutsch",
		URL:         "https://de.example",
		Category:    "Knowledge",
		Title:       models.LocalizedText{"de": "Nur Deutsch"},
		Description: models.LocalizedText{"de": "Keine englische Fassung"},
	}
	site.Normalize()

	_, entries := Build([]catalog.Record{{Path: "sites/nur-deutsch/site.yml", Site: site}}, "en")

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Title != "nur-deutsch" {
		t.Errorf("Title = %q, want fallback to id %q", entries[0].Title, "nur-deutsch")
	}
	if entries[0].Description != "" {
		t.Errorf("Description = %q, want empty fallback", entries[0].Description)
	}
}

func TestBuild_CaseSensitiveCategories(t *testing.T) {
	records := []catalog.Record{
		record("a", "https://a.example", "tools", models.QualitySolid, "Lower"),
		record("b", "https://b.example", "Tools", models.QualitySolid, "Upper"),
	}

	doc, _ := Build(records, "en")

	if len(doc.Categories) != 2 {
		t.Fatalf("got %d categories, want 2 (no case folding)", len(doc.Categories))
	}

	sum := 0
	for _, c := range doc.Categories {
		sum += c.Count
	}
	if sum != doc.TotalSites {
		t.Errorf("sum of counts = %d, want totalSites %d", sum, doc.TotalSites)
	}
}

func TestBuild_EmptyStore(t *testing.T) {
	doc, entries := Build(nil, "en")

	if doc.TotalSites != 0 {
		t.Errorf("TotalSites = %d, want 0", doc.TotalSites)
	}
	if len(doc.Categories) != 0 {
		t.Errorf("got %d categories, want 0", len(doc.Categories))
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
