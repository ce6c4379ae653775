package common

import (
	"net/url"
	"regexp"
	"strings"
)

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste
// issues: surrounding whitespace, markdown link syntax, stray punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// "[click here](https://example.com)" -> "https://example.com"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

var suspiciousPatterns = []*regexp.Regexp{
	// unreachable from the public internet
	regexp.MustCompile(`^https?://localhost`),
	regexp.MustCompile(`^https?://127\.0\.0\.1`),
	regexp.MustCompile(`^https?://0\.0\.0\.0`),
	regexp.MustCompile(`^https?://[^/]*\.local(/|$)`),
	// obvious junk, tweak over time
	regexp.MustCompile(`free-money`),
	regexp.MustCompile(`get-rich-quick`),
	regexp.MustCompile(`casino`),
	regexp.MustCompile(`porn`),
	regexp.MustCompile(`xxx`),
	regexp.MustCompile(`crack`),
	regexp.MustCompile(`keygen`),
}

// SuspiciousURL reports whether a URL is hard-blocked before any review:
// non-HTTP schemes, loopback/local addresses, or known junk patterns.
func SuspiciousURL(rawURL string) bool {
	u := strings.ToLower(rawURL)
	if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
		return true
	}
	for _, p := range suspiciousPatterns {
		if p.MatchString(u) {
			return true
		}
	}
	return false
}

// ValidURL reports whether a sanitized URL parses as an absolute HTTP/HTTPS
// URL with a non-empty host and no markup debris in the domain.
func ValidURL(rawURL string) bool {
	if strings.Contains(rawURL, " ") {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return false
	}
	return true
}
