package review

import (
	"strings"

	"github.com/web-atlas/web-atlas/models"
)

// Reviewer is the one-shot contract for the policy decision over a batch of
// changed records. Precondition: every record already passed Precheck.Run
// cleanly. Postcondition: exactly one decision per record, each with a
// rationale; accepted records carry a category from the allowed list and a
// quality band.
//
// An AI-backed implementation plugs in here. PolicyReviewer is the shipped
// deterministic one: it accepts whatever survived the pre-checks and echoes
// the record's own categorization, which keeps the pipeline runnable offline.
type Reviewer interface {
	Review(records []ChangedRecord, pol *models.Policy) (models.ReviewResult, error)
}

// PolicyReviewer accepts every pre-checked record. Records whose head check
// failed are marked needs_changes instead: an unreachable site is fixable by
// the contributor, not grounds for rejection.
type PolicyReviewer struct{}

func (r *PolicyReviewer) Review(records []ChangedRecord, pol *models.Policy) (models.ReviewResult, error) {
	result := models.ReviewResult{}

	var accepted, flagged int
	for _, rec := range records {
		d := models.Decision{
			File:    rec.Path,
			Quality: rec.Site.Quality,
		}
		if rec.HeadCheck != "" && strings.HasPrefix(rec.HeadCheck, "fail:") {
			d.Action = models.ActionNeedsChanges
			d.Reason = "site is unreachable (" + strings.TrimSpace(strings.TrimPrefix(rec.HeadCheck, "fail:")) + ")"
			flagged++
		} else {
			d.Action = models.ActionAccept
			d.Reason = "passed all mechanical checks against the curation policy"
			d.SuggestedCategory = rec.Site.Category
			d.SuggestedLenses = rec.Site.Lenses
			accepted++
		}
		result.Decisions = append(result.Decisions, d)
	}

	switch {
	case flagged == 0:
		result.Summary = "All changed records passed mechanical review."
	case accepted == 0:
		result.Summary = "Every changed record needs fixes before merge."
	default:
		result.Summary = "Some changed records need fixes before merge."
	}
	return result, nil
}
