package review

import (
	"strings"
	"testing"

	"github.com/web-atlas/web-atlas/models"
)

func TestPolicyReviewer_AcceptsCleanRecords(t *testing.T) {
	records := []ChangedRecord{
		{Path: "sites/a/site.yml", Site: validSite(), HeadCheck: "ok: HTTP 200"},
		{Path: "sites/b/site.yml", Site: validSite()},
	}

	result, err := (&PolicyReviewer{}).Review(records, testPolicy())
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if len(result.Decisions) != len(records) {
		t.Fatalf("got %d decisions, want exactly one per record (%d)", len(result.Decisions), len(records))
	}
	for _, d := range result.Decisions {
		if d.Action != models.ActionAccept {
			t.Errorf("%s: action = %q, want accept", d.File, d.Action)
		}
		if d.Reason == "" {
			t.Errorf("%s: decision has no rationale", d.File)
		}
		if d.SuggestedCategory != "Tools" {
			t.Errorf("%s: category = %q, want the record's own", d.File, d.SuggestedCategory)
		}
	}
	if !result.Approved() {
		t.Error("all-accept result should be approved")
	}
}

func TestPolicyReviewer_UnreachableSiteNeedsChanges(t *testing.T) {
	records := []ChangedRecord{
		{Path: "sites/up/site.yml", Site: validSite(), HeadCheck: "ok: HTTP 200"},
		{Path: "sites/down/site.yml", Site: validSite(), HeadCheck: "fail: HTTP 503"},
	}

	result, err := (&PolicyReviewer{}).Review(records, testPolicy())
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if result.Approved() {
		t.Error("a needs_changes decision must block approval")
	}

	var down models.Decision
	for _, d := range result.Decisions {
		if d.File == "sites/down/site.yml" {
			down = d
		}
	}
	if down.Action != models.ActionNeedsChanges {
		t.Errorf("action = %q, want needs_changes", down.Action)
	}
	if !strings.Contains(down.Reason, "HTTP 503") {
		t.Errorf("reason = %q, want the head-check status", down.Reason)
	}
}

func TestPolicyReviewer_EmptyBatchIsNotApproved(t *testing.T) {
	result, err := (&PolicyReviewer{}).Review(nil, testPolicy())
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if result.Approved() {
		t.Error("an empty review must not be approved")
	}
}

func TestRenderReport(t *testing.T) {
	result := models.ReviewResult{
		Summary: "Some changed records need fixes before merge.",
		Decisions: []models.Decision{
			{File: "sites/a/site.yml", Action: models.ActionAccept, Reason: "fine", SuggestedCategory: "Tools", Quality: models.QualitySolid},
			{File: "sites/b/site.yml", Action: models.ActionNeedsChanges, Reason: "site is unreachable (HTTP 503)"},
		},
	}

	report := RenderReport(result)
	for _, want := range []string{
		"## Atlas review",
		result.Summary,
		"sites/a/site.yml",
		"sites/b/site.yml",
		"needs changes",
		`category="Tools"`,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRenderPrecheckReport_StableOrdering(t *testing.T) {
	problems := map[string][]string{
		"sites/z/site.yml": {"problem z"},
		"sites/a/site.yml": {"problem a1", "problem a2"},
	}

	report := RenderPrecheckReport(problems)
	for i := 0; i < 5; i++ {
		if again := RenderPrecheckReport(problems); again != report {
			t.Fatal("report ordering changed between runs")
		}
	}
	if strings.Index(report, "sites/a/site.yml") > strings.Index(report, "sites/z/site.yml") {
		t.Errorf("paths not sorted:\n%s", report)
	}
	if !strings.Contains(report, "Fix these") {
		t.Errorf("report missing re-run hint:\n%s", report)
	}
}
