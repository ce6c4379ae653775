// Package sitegen turns a validated URL-only submission into a complete,
// schema-valid site record.
package sitegen

import (
	"net/url"
	"regexp"
	"strings"
)

const maxSlugLen = 50

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a stable record id from a URL's host: "https://www.example.com"
// becomes "example-com". The slug doubles as the record's directory name.
func Slug(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	domain := ""
	if err == nil {
		domain = parsed.Host
	}
	if domain == "" && !strings.Contains(rawURL, "://") {
		// schemeless input like "example.com/page"
		domain = strings.SplitN(rawURL, "/", 2)[0]
	}
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")

	slug := nonSlugChars.ReplaceAllString(domain, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}
