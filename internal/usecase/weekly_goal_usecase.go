package usecase

import (
	"context"
	"strings"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/week"

	"github.com/go-playground/validator/v10"
)

const msgWeeklyGoalNotFound = "Meta semanal no encontrada"

type weeklyGoalUsecase struct {
	goalRepo     domain.MicroGoalRepository
	macroRepo    domain.MacroGoalRepository
	evidenceRepo domain.EvidenceRepository
	rankings     domain.RankingUsecase
	calc         *week.Calculator
	validate     *validator.Validate
	metrics      *metrics.Manager
}

func NewWeeklyGoalUsecase(
	goalRepo domain.MicroGoalRepository,
	macroRepo domain.MacroGoalRepository,
	evidenceRepo domain.EvidenceRepository,
	rankings domain.RankingUsecase,
	calc *week.Calculator,
	validate *validator.Validate,
	m *metrics.Manager,
) domain.WeeklyGoalUsecase {
	return &weeklyGoalUsecase{
		goalRepo:     goalRepo,
		macroRepo:    macroRepo,
		evidenceRepo: evidenceRepo,
		rankings:     rankings,
		calc:         calc,
		validate:     validate,
		metrics:      m,
	}
}

func (u *weeklyGoalUsecase) CreateWeeklyGoal(ctx context.Context, userID string, in domain.WeeklyGoalInput, which domain.WeekSelector) (*domain.MicroGoal, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	var info week.Info
	switch which {
	case domain.WeekCurrent, "":
		info = u.calc.Current()
	case domain.WeekNext:
		info = u.calc.Next()
	default:
		return nil, apperror.BadRequest("Semana inválida, usa current o next")
	}

	if err := u.checkMacroGoal(ctx, userID, in.MacroGoalID); err != nil {
		return nil, err
	}

	category := in.NormalizedCategory
	goal := &domain.MicroGoal{
		UserID:             userID,
		MacroGoalID:        trimmedPtr(in.MacroGoalID),
		Title:              strings.TrimSpace(in.Title),
		Description:        trimmedPtr(in.Description),
		NormalizedCategory: &category,
		WeekStart:          info.StartDate(),
		WeekEnd:            info.EndDate(),
	}
	if err := u.goalRepo.Create(ctx, goal); err != nil {
		return nil, repoError(err, msgGoalNotFound)
	}
	goal.Evidence = []domain.Evidence{}
	return goal, nil
}

func (u *weeklyGoalUsecase) ListWeeklyGoals(ctx context.Context, userID, date string) (*domain.WeeklyGoalList, error) {
	info, err := u.calc.ForDate(date)
	if err != nil {
		return nil, dateError(err)
	}

	goals, err := loadWeekGoals(ctx, u.goalRepo, u.evidenceRepo, userID, info)
	if err != nil {
		return nil, err
	}

	return &domain.WeeklyGoalList{
		Week:      domain.NewWeekView(info),
		Goals:     goals,
		Completed: countCompleted(goals),
		Total:     len(goals),
	}, nil
}

func (u *weeklyGoalUsecase) GetWeeklyGoal(ctx context.Context, userID, id string) (*domain.MicroGoal, error) {
	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, id)
	if err != nil {
		return nil, err
	}
	evidence, err := u.evidenceRepo.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	goal.Evidence = evidence
	return goal, nil
}

func (u *weeklyGoalUsecase) UpdateWeeklyGoal(ctx context.Context, userID, id string, in domain.WeeklyGoalInput) (*domain.MicroGoal, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkMacroGoal(ctx, userID, in.MacroGoalID); err != nil {
		return nil, err
	}

	previous := goal.Category()
	category := in.NormalizedCategory
	goal.Title = strings.TrimSpace(in.Title)
	goal.Description = trimmedPtr(in.Description)
	goal.MacroGoalID = trimmedPtr(in.MacroGoalID)
	goal.NormalizedCategory = &category

	if err := u.goalRepo.Update(ctx, goal); err != nil {
		return nil, repoError(err, msgWeeklyGoalNotFound)
	}

	// a completed goal moving category shifts a point between two boards
	if goal.Completed && previous != category {
		u.recompute(ctx, userID, previous, goal.WeekStart)
		u.recompute(ctx, userID, category, goal.WeekStart)
	}
	return goal, nil
}

func (u *weeklyGoalUsecase) ToggleCompletion(ctx context.Context, userID, id string) (*domain.MicroGoal, error) {
	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := u.goalRepo.SetCompleted(ctx, goal.ID, !goal.Completed)
	if err != nil {
		return nil, repoError(err, msgWeeklyGoalNotFound)
	}
	if updated.Completed {
		u.metrics.RecordGoalCompleted(updated.Category())
	}

	u.recompute(ctx, userID, updated.Category(), updated.WeekStart)
	return updated, nil
}

func (u *weeklyGoalUsecase) DeleteWeeklyGoal(ctx context.Context, userID, id string) error {
	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, id)
	if err != nil {
		return err
	}
	if err := u.goalRepo.Delete(ctx, goal.ID); err != nil {
		return repoError(err, msgWeeklyGoalNotFound)
	}
	if goal.Completed {
		u.recompute(ctx, userID, goal.Category(), goal.WeekStart)
	}
	return nil
}

// recompute refreshes a ranking score. The goal change is already stored, so a
// failure here is logged and the next toggle in that category repairs the score.
func (u *weeklyGoalUsecase) recompute(ctx context.Context, userID, category, weekStart string) {
	if category == "" {
		return
	}
	if err := u.rankings.RecomputeScore(ctx, userID, category, weekStart); err != nil {
		logger.Log.Error("Failed to recompute ranking score",
			"user_id", userID, "category", category, "week_start", weekStart, "error", err)
	}
}

func (u *weeklyGoalUsecase) checkMacroGoal(ctx context.Context, userID string, id *string) error {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	macro, err := u.macroRepo.GetByID(ctx, *id)
	if err != nil {
		return repoError(err, msgGoalNotFound)
	}
	if macro.UserID != userID {
		return apperror.NotFound(msgGoalNotFound)
	}
	return nil
}

func ownedMicroGoal(ctx context.Context, repo domain.MicroGoalRepository, userID, id string) (*domain.MicroGoal, error) {
	goal, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgWeeklyGoalNotFound)
	}
	if goal.UserID != userID {
		return nil, apperror.NotFound(msgWeeklyGoalNotFound)
	}
	return goal, nil
}

// loadWeekGoals lists the user's goals inside the week with their evidence attached.
func loadWeekGoals(ctx context.Context, goalRepo domain.MicroGoalRepository, evidenceRepo domain.EvidenceRepository, userID string, info week.Info) ([]domain.MicroGoal, error) {
	goals, err := goalRepo.ListByWeek(ctx, userID, info.StartDate(), info.EndDate())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(goals) == 0 {
		return goals, nil
	}

	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	byGoal, err := evidenceRepo.ListByGoals(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for i := range goals {
		goals[i].Evidence = byGoal[goals[i].ID]
		if goals[i].Evidence == nil {
			goals[i].Evidence = []domain.Evidence{}
		}
	}
	return goals, nil
}

func countCompleted(goals []domain.MicroGoal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n
}
