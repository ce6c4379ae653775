package validate

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/web-atlas/web-atlas/pkg/submission"
)

// ValidateAction is the mechanical submission gate. It checks the pending
// list (and, with --site-file, a URL-only record file) against the URL-only
// format and exits non-zero on any violation. CI wires this in front of every
// AI step: a failing exit code here must block generation and review.
func ValidateAction(c *cli.Context) error {
	pendingPath := c.String("pending")
	siteFile := c.String("site-file")

	failed := false

	if siteFile != "" {
		data, err := os.ReadFile(siteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", siteFile, err)
			os.Exit(2)
		}
		if _, ok := submission.URLOnlyFile(string(data)); !ok {
			fmt.Fprintf(os.Stderr, "%s: not a valid URL-only submission (exactly one HTTP/HTTPS URL, max %d chars)\n",
				siteFile, submission.MaxURLLen)
			failed = true
		} else {
			fmt.Printf("%s: valid URL-only submission\n", siteFile)
		}
	}

	data, err := os.ReadFile(pendingPath)
	if os.IsNotExist(err) {
		if siteFile == "" {
			fmt.Printf("No pending list at %s, nothing to validate\n", pendingPath)
		}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", pendingPath, err)
		os.Exit(2)
	} else {
		errs := submission.ValidatePendingList(string(data))
		if len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "Validation failed for %s:\n", pendingPath)
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  - %v\n", e)
			}
			fmt.Fprintln(os.Stderr, "\nRequired format: one HTTP/HTTPS URL per line, max 200 characters each.")
			failed = true
		} else {
			fmt.Printf("%s: all lines valid\n", pendingPath)
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
