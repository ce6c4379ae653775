// Package submission implements the mechanical gate in front of the AI
// pipeline. Nothing model-steerable may pass: an accepted submission is
// exactly one absolute HTTP/HTTPS URL of at most 200 characters, either as a
// line of the shared pending list or as the sole content of a new site file.
// This check runs, and must pass, before any AI text generation is invoked.
package submission

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// MaxURLLen is the hard cap on a submitted URL line.
const MaxURLLen = 200

var urlPattern = regexp.MustCompile(`^https?://[^\s/]+`)

// ValidateLine checks a single submitted line against the URL-only format.
func ValidateLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return fmt.Errorf("empty line")
	}
	if len(line) > MaxURLLen {
		return fmt.Errorf("URL exceeds %d characters (found %d)", MaxURLLen, len(line))
	}
	if strings.ContainsAny(line, " \t") {
		return fmt.Errorf("URL must not contain whitespace")
	}

	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return fmt.Errorf("must be an absolute HTTP/HTTPS URL")
	}
	if !urlPattern.MatchString(line) {
		return fmt.Errorf("invalid URL format")
	}

	parsed, err := url.Parse(line)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme %q is not allowed", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// LineError is a validation failure at a specific line of the pending list.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ValidatePendingList checks the whole pending-list content. Blank lines and
// #-comments are skipped; every other line must pass ValidateLine. All
// failures are reported so a contributor can fix the file in one pass.
func ValidatePendingList(content string) []LineError {
	var errs []LineError
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ValidateLine(line); err != nil {
			errs = append(errs, LineError{Line: i + 1, Err: err})
		}
	}
	return errs
}

// URLOnlyFile reports whether content is a valid URL-only site file: exactly
// one non-empty line holding one valid URL. It returns the URL when so.
// Multi-line content is not an error here; it just is not a URL-only
// submission and goes through the full-record review path instead.
func URLOnlyFile(content string) (string, bool) {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if s := strings.TrimSpace(raw); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) != 1 {
		return "", false
	}
	if err := ValidateLine(lines[0]); err != nil {
		return "", false
	}
	return lines[0], true
}
