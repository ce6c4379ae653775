package models

// Action is the outcome a reviewer assigns to a single changed record.
type Action string

const (
	ActionAccept       Action = "accept"
	ActionReject       Action = "reject"
	ActionNeedsChanges Action = "needs_changes"
)

// Decision is one reviewer verdict. Every decision carries a human-readable
// rationale; a rejection is a normal terminal outcome, not a system fault.
type Decision struct {
	File              string   `json:"file"`
	Action            Action   `json:"action"`
	Reason            string   `json:"reason"`
	SuggestedCategory string   `json:"suggested_category,omitempty"`
	SuggestedLenses   []string `json:"suggested_lenses,omitempty"`
	Quality           Quality  `json:"quality,omitempty"`
}

// ReviewResult is the full output of one review run.
type ReviewResult struct {
	Summary   string     `json:"summary"`
	Decisions []Decision `json:"decisions"`
}

// Approved reports whether the run is fully clean: no rejections and no
// entries needing changes. Only then may the change be marked mergeable.
func (r *ReviewResult) Approved() bool {
	for _, d := range r.Decisions {
		if d.Action != ActionAccept {
			return false
		}
	}
	return len(r.Decisions) > 0
}
