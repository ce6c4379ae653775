// Package fetcher wraps the HTTP access the generation pipeline needs:
// fetching a page for metadata extraction and running reachability checks.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "web-atlas/1.0"

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFetcherWithClient is used by tests to inject an httptest client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// GetHTML fetches a URL and parses the body into a goquery document.
func (f *Fetcher) GetHTML(url string) (*goquery.Document, error) {
	body, err := f.GetHTMLBytes(url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetHTMLBytes fetches a URL and returns the raw body.
func (f *Fetcher) GetHTMLBytes(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// HeadCheck issues a HEAD request following redirects and reports whether the
// URL is reachable, together with a short status description.
func (f *Fetcher) HeadCheck(url string) (bool, string) {
	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		return false, err.Error()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()

	status := fmt.Sprintf("HTTP %d", resp.StatusCode)
	if resp.StatusCode >= 400 {
		return false, status
	}
	return true, status
}
