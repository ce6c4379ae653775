package review

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/web-atlas/web-atlas/models"
	"github.com/web-atlas/web-atlas/pkg/catalog"
	"github.com/web-atlas/web-atlas/pkg/db"
	"github.com/web-atlas/web-atlas/pkg/fetcher"
	"github.com/web-atlas/web-atlas/pkg/policy"
	"github.com/web-atlas/web-atlas/pkg/review"
	"github.com/web-atlas/web-atlas/pkg/sitegen"
	"github.com/web-atlas/web-atlas/pkg/submission"
)

// ApprovedMarker is written only when a review run is fully clean. The merge
// step checks for it; its absence blocks the merge.
const ApprovedMarker = ".atlas/APPROVED"

// ReviewAction reviews changed record files. URL-only submissions are
// expanded into full records first; full records go through the mechanical
// pre-checks and then the reviewer. Every decision is logged with a run id,
// and the APPROVED marker is written only when nothing was rejected or
// flagged.
func ReviewAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	changed := c.Args().Slice()
	if len(changed) == 0 {
		fmt.Println("No changed record files given, nothing to review")
		return nil
	}

	pol, err := policy.Load(c.String("policy"))
	if err != nil {
		logger.Error("failed to load policy", "error", err)
		os.Exit(2)
	}

	records, warnings, err := catalog.Load(c.String("sites"))
	if err != nil {
		logger.Error("failed to load record store", "error", err)
		os.Exit(2)
	}
	for _, w := range warnings {
		logger.Warn("skipping record", "path", w.Path, "reason", w.Reason)
	}

	database, err := openDB(c)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	f := fetcher.NewFetcher()
	skipFetch := c.Bool("skip-fetch")

	// Expand URL-only site files into full records before review. The file
	// already passed the mechanical gate or URLOnlyFile rejects it here.
	var gen sitegen.Generator = &sitegen.DraftGenerator{}
	var underReview []review.ChangedRecord
	precheckProblems := make(map[string][]string)

	for _, path := range changed {
		data, err := os.ReadFile(path)
		if err != nil {
			precheckProblems[path] = append(precheckProblems[path], fmt.Sprintf("unreadable: %v", err))
			continue
		}

		if url, ok := submission.URLOnlyFile(string(data)); ok {
			site, genErr := expandURLOnly(f, gen, pol, url, skipFetch)
			if genErr != nil {
				precheckProblems[path] = append(precheckProblems[path], genErr.Error())
				continue
			}
			out, marshalErr := yaml.Marshal(site)
			if marshalErr != nil {
				precheckProblems[path] = append(precheckProblems[path], fmt.Sprintf("could not serialize generated record: %v", marshalErr))
				continue
			}
			if err := os.WriteFile(path, out, 0644); err != nil {
				precheckProblems[path] = append(precheckProblems[path], fmt.Sprintf("could not write generated record: %v", err))
				continue
			}
			logger.Info("expanded URL-only submission", "path", path, "url", url)
			underReview = append(underReview, review.ChangedRecord{Path: path, Site: site})
			continue
		}

		var site models.Site
		if err := yaml.Unmarshal(data, &site); err != nil {
			precheckProblems[path] = append(precheckProblems[path], fmt.Sprintf("YAML parse error: %v", err))
			continue
		}
		site.Normalize()
		underReview = append(underReview, review.ChangedRecord{Path: path, Site: site})
	}

	precheck := review.NewPrecheck(pol, records)
	for i := range underReview {
		rec := &underReview[i]
		for _, problem := range precheck.Run(*rec) {
			precheckProblems[rec.Path] = append(precheckProblems[rec.Path], problem)
		}
		if !skipFetch && rec.Site.URL != "" {
			ok, info := f.HeadCheck(rec.Site.URL)
			if ok {
				rec.HeadCheck = "ok: " + info
			} else {
				rec.HeadCheck = "fail: " + info
			}
			if urlID, err := database.InsertURL(rec.Site.URL); err == nil {
				if err := database.RecordAccess(urlID, info, ok); err != nil {
					logger.Warn("failed to record access", "error", err)
				}
			}
		}
	}

	// Pre-check failures block the reviewer: nothing model-facing runs on
	// content that failed a mechanical rule.
	if len(precheckProblems) > 0 {
		fmt.Print(review.RenderPrecheckReport(precheckProblems))
		removeApprovedMarker(c.String("marker"))
		os.Exit(1)
	}

	reviewer := &review.PolicyReviewer{}
	result, err := reviewer.Review(underReview, pol)
	if err != nil {
		logger.Error("review failed", "error", err)
		os.Exit(2)
	}

	runID := uuid.NewString()
	for _, d := range result.Decisions {
		if err := database.RecordDecision(runID, d); err != nil {
			logger.Warn("failed to record decision", "error", err)
		}
	}

	fmt.Print(review.RenderReport(result))

	marker := c.String("marker")
	if result.Approved() {
		if err := writeApprovedMarker(marker); err != nil {
			logger.Error("failed to write approval marker", "error", err)
			os.Exit(2)
		}
		logger.Info("review approved", "run_id", runID, "records", len(result.Decisions))
		return nil
	}

	removeApprovedMarker(marker)
	logger.Info("review not approved", "run_id", runID)
	os.Exit(1)
	return nil
}

// expandURLOnly turns a validated URL into a full record, enforcing the
// generator postconditions.
func expandURLOnly(f *fetcher.Fetcher, gen sitegen.Generator, pol *models.Policy, url string, skipFetch bool) (models.Site, error) {
	var meta *sitegen.PageMeta
	if skipFetch {
		meta = &sitegen.PageMeta{URL: url}
	} else {
		if ok, info := f.HeadCheck(url); !ok {
			return models.Site{}, fmt.Errorf("URL check failed: %s", info)
		}
		var err error
		meta, err = sitegen.FetchPageMeta(f, url)
		if err != nil {
			return models.Site{}, fmt.Errorf("could not fetch page: %w", err)
		}
	}

	site, err := gen.Generate(url, meta, pol)
	if err != nil {
		return models.Site{}, fmt.Errorf("generation failed: %w", err)
	}
	if !pol.CategoryAllowed(site.Category) {
		return models.Site{}, fmt.Errorf("generated category %q is not allowed", site.Category)
	}
	return site, nil
}

func writeApprovedMarker(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("approved\n"), 0644)
}

func removeApprovedMarker(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not remove %s: %v\n", path, err)
	}
}

func openDB(c *cli.Context) (*db.DB, error) {
	if path := c.String("db"); path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}
