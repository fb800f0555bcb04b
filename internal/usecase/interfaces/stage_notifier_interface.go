package interfaces

import "vistoria_xpto/internal/domain/entities"

// IStageNotifier receives successful stage transitions so dashboard
// observers can invalidate their counts instead of polling. Publishing is
// best-effort and must never block or fail the transition.

type IStageNotifier interface {
	StageChanged(assessmentID string, from, to entities.AssessmentStage)
}
