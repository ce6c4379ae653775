package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/web-atlas/web-atlas/models"
)

// RenderReport formats a review result as the markdown comment posted to the
// pull request.
func RenderReport(result models.ReviewResult) string {
	var b strings.Builder
	b.WriteString("## Atlas review\n\n")
	b.WriteString(result.Summary)
	b.WriteString("\n\n")

	for _, d := range result.Decisions {
		marker := "[x]"
		switch d.Action {
		case models.ActionReject:
			marker = "[rejected]"
		case models.ActionNeedsChanges:
			marker = "[needs changes]"
		}
		fmt.Fprintf(&b, "- %s `%s`: **%s** — %s\n", marker, d.File, d.Action, d.Reason)
		if d.Action != models.ActionReject && (d.SuggestedCategory != "" || len(d.SuggestedLenses) > 0 || d.Quality != "") {
			fmt.Fprintf(&b, "  - category=%q lenses=%v quality=%q\n", d.SuggestedCategory, d.SuggestedLenses, d.Quality)
		}
	}
	return b.String()
}

// RenderPrecheckReport formats pre-check failures. These block the AI step,
// so the report tells the contributor what to fix for a re-run.
func RenderPrecheckReport(problems map[string][]string) string {
	var b strings.Builder
	b.WriteString("## Atlas review (pre-checks)\n\n")

	// Stable report ordering regardless of map iteration.
	paths := make([]string, 0, len(problems))
	for path := range problems {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		for _, problem := range problems[path] {
			fmt.Fprintf(&b, "- `%s`: %s\n", path, problem)
		}
	}
	b.WriteString("\nFix these and the review will run again.\n")
	return b.String()
}
