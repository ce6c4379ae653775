package catalog

import "strings"

// NormalizeURL produces the canonical form used for duplicate detection:
// surrounding whitespace trimmed and any trailing slash dropped.
func NormalizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
