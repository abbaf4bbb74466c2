package usecase

import (
	"context"
	"strings"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/week"

	"github.com/go-playground/validator/v10"
)

const msgGoalNotFound = "Objetivo no encontrado"

type goalUsecase struct {
	repo     domain.MacroGoalRepository
	calc     *week.Calculator
	validate *validator.Validate
}

func NewGoalUsecase(repo domain.MacroGoalRepository, calc *week.Calculator, validate *validator.Validate) domain.GoalUsecase {
	return &goalUsecase{
		repo:     repo,
		calc:     calc,
		validate: validate,
	}
}

func (u *goalUsecase) CreateGoal(ctx context.Context, userID string, in domain.MacroGoalInput) (*domain.MacroGoal, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	year := in.Year
	if year == 0 {
		year = u.calc.Current().Year
	}

	goal := &domain.MacroGoal{
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: trimmedPtr(in.Description),
		Area:        in.Area,
		Year:        year,
		Status:      domain.GoalStatusActive,
	}
	if err := u.repo.Create(ctx, goal); err != nil {
		return nil, apperror.Internal(err)
	}
	return goal, nil
}

func (u *goalUsecase) GetGoal(ctx context.Context, userID, id string) (*domain.MacroGoal, error) {
	return u.owned(ctx, userID, id)
}

func (u *goalUsecase) ListGoals(ctx context.Context, userID string, filter domain.MacroGoalFilter) ([]domain.MacroGoal, error) {
	if filter.Status != "" {
		switch filter.Status {
		case domain.GoalStatusActive, domain.GoalStatusCompleted, domain.GoalStatusAbandoned:
		default:
			return nil, apperror.BadRequest("Estado inválido")
		}
	}
	goals, err := u.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return goals, nil
}

func (u *goalUsecase) UpdateGoal(ctx context.Context, userID, id string, in domain.MacroGoalInput) (*domain.MacroGoal, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	goal, err := u.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	goal.Title = strings.TrimSpace(in.Title)
	goal.Description = trimmedPtr(in.Description)
	goal.Area = in.Area
	if in.Year != 0 {
		goal.Year = in.Year
	}

	if err := u.repo.Update(ctx, goal); err != nil {
		return nil, repoError(err, msgGoalNotFound)
	}
	return goal, nil
}

func (u *goalUsecase) SetStatus(ctx context.Context, userID, id, status string) (*domain.MacroGoal, error) {
	if err := validateInput(u.validate, domain.MacroGoalStatusInput{Status: status}); err != nil {
		return nil, err
	}

	goal, err := u.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	goal.Status = status
	if err := u.repo.Update(ctx, goal); err != nil {
		return nil, repoError(err, msgGoalNotFound)
	}
	return goal, nil
}

func (u *goalUsecase) DeleteGoal(ctx context.Context, userID, id string) error {
	if _, err := u.owned(ctx, userID, id); err != nil {
		return err
	}
	return repoError(u.repo.Delete(ctx, id), msgGoalNotFound)
}

// owned loads a goal and hides goals of other users behind a 404.
func (u *goalUsecase) owned(ctx context.Context, userID, id string) (*domain.MacroGoal, error) {
	goal, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgGoalNotFound)
	}
	if goal.UserID != userID {
		return nil, apperror.NotFound(msgGoalNotFound)
	}
	return goal, nil
}
