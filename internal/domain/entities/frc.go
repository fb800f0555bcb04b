package entities

import "time"

// FRCSource tells whether an FRC line came from the original estimate or
// from an approved/declined additional.
type FRCSource string

const (
	FRCSourceEstimate   FRCSource = "estimate"
	FRCSourceAdditional FRCSource = "additional"
)

// FRCDecision is the per-line reconciliation decision.
//
//   - pending: awaiting an engineer decision
//   - agree:   actual equals quoted
//   - adjust:  engineer supplied a different actual plus a reason
//   - removed: line negated by an approved removal (set by the merge)
//   - declined: declined additional (set by the merge)
//
// removed and declined are merge-assigned only; a decision call never sets
// them directly.
type FRCDecision string

const (
	FRCDecisionPending  FRCDecision = "pending"
	FRCDecisionAgree    FRCDecision = "agree"
	FRCDecisionAdjust   FRCDecision = "adjust"
	FRCDecisionRemoved  FRCDecision = "removed"
	FRCDecisionDeclined FRCDecision = "declined"
)

// AutoDecided reports whether the decision is one the merge assigns itself.
func (d FRCDecision) AutoDecided() bool {
	return d == FRCDecisionRemoved || d == FRCDecisionDeclined
}

// CountsTowardTotal reports whether the line's actual total participates in
// the committed aggregate.
func (d FRCDecision) CountsTowardTotal() bool {
	return d == FRCDecisionAgree || d == FRCDecisionAdjust || d == FRCDecisionRemoved
}

// FRCLine is one reconciled line of the final reconciliation. Lines are
// rebuildable: the merge derives them deterministically from the estimate
// lines, the decided additionals and any previously recorded decisions.
type FRCLine struct {
	Fingerprint           string      `json:"fingerprint"`
	Source                FRCSource   `json:"source"`
	Decision              FRCDecision `json:"decision"`
	LineNumber            int         `json:"line_number"`
	Description           string      `json:"description"`
	Category              string      `json:"category"`
	PartType              string      `json:"part_type"`
	QuotedTotal           float64     `json:"quoted_total"`
	ActualTotal           float64     `json:"actual_total"`
	AdjustReason          string      `json:"adjust_reason,omitempty"`
	RemovedViaAdditionals bool        `json:"removed_via_additionals,omitempty"`
}

// Actionable reports whether the line still needs a manual decision before
// the assessment can leave the reconciliation stage. Auto-decided lines are
// never actionable.
func (l FRCLine) Actionable() bool {
	return !l.Decision.AutoDecided()
}

// FRCSnapshot owns the current FRC line set of one assessment plus the
// recomputed aggregates.
//
// Storage model (DynamoDB):
//   - PK: assessment_id
//   - lines persisted as one JSON blob attribute; the whole snapshot is
//     versioned by a single counter and every write is conditional on it.
//
// Locked is set when the assessment completes the reconciliation stage; a
// locked snapshot rejects merges and decisions until explicitly reopened.
type FRCSnapshot struct {
	AssessmentID       string             `json:"assessment_id"`
	Lines              []FRCLine          `json:"lines"`
	SubtotalByCategory map[string]float64 `json:"subtotal_by_category"`
	GrandTotal         float64            `json:"grand_total"`
	Version            int64              `json:"version"`
	Locked             bool               `json:"locked"`
	MergedAt           time.Time          `json:"merged_at"`
}

// LineByFingerprint returns the line with the given fingerprint, if present.
func (s FRCSnapshot) LineByFingerprint(fp string) (FRCLine, bool) {
	for _, l := range s.Lines {
		if l.Fingerprint == fp {
			return l, true
		}
	}
	return FRCLine{}, false
}

// RecomputeTotals recalculates the committed aggregates in place.
// Declined and pending lines never contribute; removed pairs net to zero
// through their negative counterpart.
func (s *FRCSnapshot) RecomputeTotals() {
	subtotals := make(map[string]float64)
	grand := 0.0
	for _, l := range s.Lines {
		if !l.Decision.CountsTowardTotal() {
			continue
		}
		subtotals[l.Category] += l.ActualTotal
		grand += l.ActualTotal
	}
	s.SubtotalByCategory = subtotals
	s.GrandTotal = grand
}

// ProvisionalTotal is the committed grand total plus the quoted totals of
// lines still pending, used for the provisional view only.
func (s FRCSnapshot) ProvisionalTotal() float64 {
	total := s.GrandTotal
	for _, l := range s.Lines {
		if l.Decision == FRCDecisionPending {
			total += l.QuotedTotal
		}
	}
	return total
}
