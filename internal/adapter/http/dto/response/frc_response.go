package response

import (
	"time"

	"vistoria_xpto/internal/domain/entities"
)

type FRCLineResponse struct {
	Fingerprint           string  `json:"fingerprint"`
	Source                string  `json:"source"`
	Decision              string  `json:"decision"`
	LineNumber            int     `json:"line_number"`
	Description           string  `json:"description"`
	Category              string  `json:"category"`
	PartType              string  `json:"part_type,omitempty"`
	QuotedTotal           float64 `json:"quoted_total"`
	ActualTotal           float64 `json:"actual_total"`
	AdjustReason          string  `json:"adjust_reason,omitempty"`
	RemovedViaAdditionals bool    `json:"removed_via_additionals,omitempty"`
}

// FRCSnapshotResponse is the reconciliation view of an assessment. Version is
// exposed so callers can detect that a concurrent merge or decision landed
// between their read and their next write.
type FRCSnapshotResponse struct {
	AssessmentID       string             `json:"assessment_id"`
	Lines              []FRCLineResponse  `json:"lines"`
	SubtotalByCategory map[string]float64 `json:"subtotal_by_category"`
	GrandTotal         float64            `json:"grand_total"`
	ProvisionalTotal   float64            `json:"provisional_total"`
	Version            int64              `json:"version"`
	Locked             bool               `json:"locked"`
	Complete           bool               `json:"complete"`
	MergedAt           time.Time          `json:"merged_at"`
}

func FromFRCSnapshot(s entities.FRCSnapshot, complete bool) FRCSnapshotResponse {
	lines := make([]FRCLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, FRCLineResponse{
			Fingerprint:           l.Fingerprint,
			Source:                string(l.Source),
			Decision:              string(l.Decision),
			LineNumber:            l.LineNumber,
			Description:           l.Description,
			Category:              l.Category,
			PartType:              l.PartType,
			QuotedTotal:           l.QuotedTotal,
			ActualTotal:           l.ActualTotal,
			AdjustReason:          l.AdjustReason,
			RemovedViaAdditionals: l.RemovedViaAdditionals,
		})
	}
	return FRCSnapshotResponse{
		AssessmentID:       s.AssessmentID,
		Lines:              lines,
		SubtotalByCategory: s.SubtotalByCategory,
		GrandTotal:         s.GrandTotal,
		ProvisionalTotal:   s.ProvisionalTotal(),
		Version:            s.Version,
		Locked:             s.Locked,
		Complete:           complete,
		MergedAt:           s.MergedAt,
	}
}
