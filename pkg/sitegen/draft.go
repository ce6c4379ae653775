package sitegen

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/web-atlas/web-atlas/pkg/fetcher"
)

// PageMeta is what we can learn about a page without any AI involvement.
type PageMeta struct {
	URL         string
	Title       string
	Description string
	SiteName    string
}

// FetchPageMeta downloads a page and extracts its title, meta description and
// site name. Readability gets the first pass; goquery meta tags fill the gaps.
func FetchPageMeta(f *fetcher.Fetcher, rawURL string) (*PageMeta, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	body, err := f.GetHTMLBytes(rawURL)
	if err != nil {
		return nil, err
	}

	meta := &PageMeta{URL: rawURL}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(body)), parsedURL)
	if err == nil {
		meta.Title = collapseWhitespace(article.Title)
		meta.Description = collapseWhitespace(article.Excerpt)
		meta.SiteName = collapseWhitespace(article.SiteName)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		// Readability output alone is still usable.
		return meta, nil
	}
	if meta.Title == "" {
		meta.Title = collapseWhitespace(doc.Find("title").First().Text())
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			meta.Description = collapseWhitespace(desc)
		}
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
			meta.Description = collapseWhitespace(desc)
		}
	}
	if meta.SiteName == "" {
		if name, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
			meta.SiteName = collapseWhitespace(name)
		}
	}

	return meta, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
