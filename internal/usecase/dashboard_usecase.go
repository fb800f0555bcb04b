package usecase

import (
	"context"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
)

// IDashboardUseCase exposes eventually-consistent stage-population counts
// for external dashboards. Counts and the matching list views share one
// repository predicate, so a badge can never disagree with the list behind
// it.

type IDashboardUseCase interface {
	CountByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) (int, error)
	CountByStageSet(ctx context.Context, stages []entities.AssessmentStage, onlyScheduled bool) (int, error)
}

type DashboardUseCase struct {
	repo interfaces.IAssessmentRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IAssessmentRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (u *DashboardUseCase) CountByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) (int, error) {
	if !stage.IsValid() {
		return 0, ErrInvalidStage
	}
	return u.repo.CountByStage(ctx, stage, onlyScheduled)
}

func (u *DashboardUseCase) CountByStageSet(ctx context.Context, stages []entities.AssessmentStage, onlyScheduled bool) (int, error) {
	if len(stages) == 0 {
		return 0, ErrInvalidStage
	}
	for _, s := range stages {
		if !s.IsValid() {
			return 0, ErrInvalidStage
		}
	}
	return u.repo.CountByStages(ctx, stages, onlyScheduled)
}
