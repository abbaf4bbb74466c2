package usecase

import (
	"context"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/week"
)

type dashboardUsecase struct {
	profileRepo  domain.ProfileRepository
	macroRepo    domain.MacroGoalRepository
	goalRepo     domain.MicroGoalRepository
	evidenceRepo domain.EvidenceRepository
	calc         *week.Calculator
}

func NewDashboardUsecase(
	profileRepo domain.ProfileRepository,
	macroRepo domain.MacroGoalRepository,
	goalRepo domain.MicroGoalRepository,
	evidenceRepo domain.EvidenceRepository,
	calc *week.Calculator,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		profileRepo:  profileRepo,
		macroRepo:    macroRepo,
		goalRepo:     goalRepo,
		evidenceRepo: evidenceRepo,
		calc:         calc,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}

	active, err := u.macroRepo.CountByStatus(ctx, userID, domain.GoalStatusActive)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	info := u.calc.Current()
	goals, err := loadWeekGoals(ctx, u.goalRepo, u.evidenceRepo, userID, info)
	if err != nil {
		return nil, err
	}

	completed := countCompleted(goals)
	return &domain.Dashboard{
		Profile:          profile,
		ActiveMacroGoals: active,
		Week:             domain.NewWeekView(info),
		Goals:            goals,
		Completed:        completed,
		Total:            len(goals),
		CompletionRate:   domain.CompletionRate(completed, len(goals)),
	}, nil
}
