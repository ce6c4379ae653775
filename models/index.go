package models

// CategoryCount is one entry of the generated categories document.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoriesDoc is the generated categories.json document.
type CategoriesDoc struct {
	Categories []CategoryCount `json:"categories"`
	TotalSites int             `json:"totalSites"`
}

// SiteEntry is one element of the generated sites-<locale>.json document:
// a flat, single-locale projection of a Site record.
type SiteEntry struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Lenses      []string `json:"lenses"`
	Quality     Quality  `json:"quality"`
	Tags        []string `json:"tags,omitempty"`
}
