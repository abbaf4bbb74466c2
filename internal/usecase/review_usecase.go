package usecase

import (
	"context"
	"errors"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/week"

	"github.com/go-playground/validator/v10"
)

const (
	defaultHistoryLimit = 12
	maxHistoryLimit     = 52
)

type reviewUsecase struct {
	goalRepo     domain.MicroGoalRepository
	evidenceRepo domain.EvidenceRepository
	reviewRepo   domain.ReviewRepository
	calc         *week.Calculator
	validate     *validator.Validate
}

func NewReviewUsecase(
	goalRepo domain.MicroGoalRepository,
	evidenceRepo domain.EvidenceRepository,
	reviewRepo domain.ReviewRepository,
	calc *week.Calculator,
	validate *validator.Validate,
) domain.ReviewUsecase {
	return &reviewUsecase{
		goalRepo:     goalRepo,
		evidenceRepo: evidenceRepo,
		reviewRepo:   reviewRepo,
		calc:         calc,
		validate:     validate,
	}
}

func (u *reviewUsecase) GetSummary(ctx context.Context, userID, date string) (*domain.ReviewSummary, error) {
	info, err := u.calc.ForDate(date)
	if err != nil {
		return nil, dateError(err)
	}

	goals, err := loadWeekGoals(ctx, u.goalRepo, u.evidenceRepo, userID, info)
	if err != nil {
		return nil, err
	}

	completed := countCompleted(goals)
	rate := domain.CompletionRate(completed, len(goals))
	summary := &domain.ReviewSummary{
		Week:           domain.NewWeekView(info),
		Goals:          goals,
		Completed:      completed,
		Total:          len(goals),
		CompletionRate: rate,
		Performance:    domain.PerformanceFor(rate),
	}

	review, err := u.reviewRepo.GetByWeek(ctx, userID, info.StartDate())
	switch {
	case err == nil:
		summary.Review = review
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}
	return summary, nil
}

func (u *reviewUsecase) BuildReport(ctx context.Context, userID, date string) (string, error) {
	summary, err := u.GetSummary(ctx, userID, date)
	if err != nil {
		return "", err
	}
	return BuildWeeklyReport(summary), nil
}

func (u *reviewUsecase) SaveReview(ctx context.Context, userID string, in domain.ReviewInput) (*domain.WeeklyReview, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	info, err := u.calc.ForDate(in.Date)
	if err != nil {
		return nil, dateError(err)
	}

	goals, err := u.goalRepo.ListByWeek(ctx, userID, info.StartDate(), info.EndDate())
	if err != nil {
		return nil, apperror.Internal(err)
	}

	review := &domain.WeeklyReview{
		UserID:         userID,
		WeekStart:      info.StartDate(),
		WeekEnd:        info.EndDate(),
		Notes:          optionalString(in.Notes),
		GoalsCompleted: countCompleted(goals),
		GoalsTotal:     len(goals),
	}
	if err := u.reviewRepo.Upsert(ctx, review); err != nil {
		return nil, apperror.Internal(err)
	}
	return review, nil
}

func (u *reviewUsecase) History(ctx context.Context, userID string, limit int) ([]domain.WeeklyReview, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	reviews, err := u.reviewRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}
