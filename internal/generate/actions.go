package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/web-atlas/web-atlas/internal/common"
	"github.com/web-atlas/web-atlas/pkg/catalog"
	"github.com/web-atlas/web-atlas/pkg/db"
	"github.com/web-atlas/web-atlas/pkg/fetcher"
	"github.com/web-atlas/web-atlas/pkg/policy"
	"github.com/web-atlas/web-atlas/pkg/sitegen"
	"github.com/web-atlas/web-atlas/pkg/submission"
)

// GenerateAction consumes validated URL-only submissions from the pending
// list and writes complete site records. URLs that cannot be processed stay
// in the pending list for the contributor; consumed URLs are removed, and a
// fully consumed list is deleted.
func GenerateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	pendingPath := c.String("pending")
	sitesDir := c.String("sites")
	skipFetch := c.Bool("skip-fetch")

	urls, err := submission.ReadPending(pendingPath)
	if err != nil {
		logger.Error("failed to read pending list", "error", err)
		os.Exit(2)
	}
	if len(urls) == 0 {
		fmt.Println("No URLs in pending list, nothing to generate")
		return nil
	}

	// The mechanical gate must pass before anything downstream runs. This is
	// a security ordering invariant, so it is re-checked here even when CI
	// already ran the validate step.
	data, err := os.ReadFile(pendingPath)
	if err != nil {
		logger.Error("failed to read pending list", "error", err)
		os.Exit(2)
	}
	if errs := submission.ValidatePendingList(string(data)); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
		fmt.Fprintln(os.Stderr, "Pending list failed validation; no generation was attempted.")
		os.Exit(1)
	}

	pol, err := policy.Load(c.String("policy"))
	if err != nil {
		logger.Error("failed to load policy", "error", err)
		os.Exit(2)
	}

	records, warnings, err := catalog.Load(sitesDir)
	if err != nil {
		logger.Error("failed to load record store", "error", err)
		os.Exit(2)
	}
	for _, w := range warnings {
		logger.Warn("skipping record", "path", w.Path, "reason", w.Reason)
	}
	urlIndex := catalog.URLIndex(records)

	database, err := openDB(c)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	f := fetcher.NewFetcher()
	var gen sitegen.Generator = &sitegen.DraftGenerator{}

	var remaining []string
	var generated []string

	for _, rawURL := range urls {
		url := catalog.NormalizeURL(common.SanitizeURL(rawURL))
		slug := sitegen.Slug(url)

		urlID, err := database.InsertURL(url)
		if err != nil {
			logger.Warn("failed to track URL", "url", url, "error", err)
		}

		keep := func(status, detail string) {
			logger.Warn("keeping URL in pending list", "url", rawURL, "reason", detail)
			remaining = append(remaining, rawURL)
			if urlID != 0 {
				if err := database.RecordSubmission(urlID, slug, status, detail, ""); err != nil {
					logger.Warn("failed to record submission", "error", err)
				}
			}
		}

		if !common.ValidURL(url) {
			keep("failed", "URL is malformed even after cleanup")
			continue
		}
		if common.SuspiciousURL(url) {
			keep("failed", "URL looks invalid or suspicious")
			continue
		}

		recordPath := filepath.Join(sitesDir, slug, catalog.RecordFile)
		if _, err := os.Stat(recordPath); err == nil {
			keep("duplicate", "site already exists at "+recordPath)
			continue
		}
		if existing := urlIndex[url]; len(existing) > 0 {
			keep("duplicate", "URL already recorded in "+existing[0])
			continue
		}

		var meta *sitegen.PageMeta
		if skipFetch {
			meta = &sitegen.PageMeta{URL: url}
		} else {
			ok, info := f.HeadCheck(url)
			if urlID != 0 {
				if err := database.RecordAccess(urlID, info, ok); err != nil {
					logger.Warn("failed to record access", "error", err)
				}
			}
			if !ok {
				keep("unreachable", "URL check failed: "+info)
				continue
			}

			meta, err = sitegen.FetchPageMeta(f, url)
			if err != nil {
				keep("failed", "could not fetch page: "+err.Error())
				continue
			}
		}

		site, err := gen.Generate(url, meta, pol)
		if err != nil {
			keep("failed", "generation failed: "+err.Error())
			continue
		}
		if !pol.CategoryAllowed(site.Category) {
			keep("failed", fmt.Sprintf("generated category %q is not allowed", site.Category))
			continue
		}

		path, err := catalog.Save(sitesDir, site)
		if err != nil {
			keep("failed", "could not write record: "+err.Error())
			continue
		}

		generated = append(generated, path)
		logger.Info("generated record", "url", url, "path", path)
		if urlID != 0 {
			if err := database.RecordSubmission(urlID, slug, "generated", "", path); err != nil {
				logger.Warn("failed to record submission", "error", err)
			}
		}
	}

	if err := submission.WritePending(pendingPath, remaining); err != nil {
		logger.Error("failed to rewrite pending list", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Generated %d record(s), %d URL(s) left pending\n", len(generated), len(remaining))
	if len(generated) == 0 && len(remaining) > 0 {
		os.Exit(2)
	}
	if len(remaining) > 0 {
		os.Exit(1)
	}
	return nil
}

func openDB(c *cli.Context) (*db.DB, error) {
	if path := c.String("db"); path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}
