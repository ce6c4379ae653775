package submission

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPendingPath is the shared pending-submissions list.
const DefaultPendingPath = ".github/submissions.txt"

// ReadPending returns the URLs listed in the pending file, skipping blanks
// and #-comments. A missing file is an empty list, not an error.
func ReadPending(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pending list: %w", err)
	}

	var urls []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

// WritePending rewrites the pending list with the remaining URLs, one per
// line. An empty list deletes the file: a fully consumed list should not
// leave an empty artifact behind.
func WritePending(path string, urls []string) error {
	if len(urls) == 0 {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove pending list: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create pending list directory: %w", err)
		}
	}
	var b strings.Builder
	for _, u := range urls {
		b.WriteString(u)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write pending list: %w", err)
	}
	return nil
}
