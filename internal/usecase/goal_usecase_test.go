package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"goals-project-backend/internal/domain"
	"goals-project-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default year to the current week's year", func(t *testing.T) {
		repo := new(MockMacroGoalRepo)
		uc := usecase.NewGoalUsecase(repo, newCalculator(), usecase.NewValidator())

		repo.On("Create", ctx, mock.MatchedBy(func(g *domain.MacroGoal) bool {
			return g.UserID == "u1" && g.Year == 2024 && g.Status == domain.GoalStatusActive && g.Title == "Correr un maratón"
		})).Return(nil)

		goal, err := uc.CreateGoal(ctx, "u1", domain.MacroGoalInput{Title: "  Correr un maratón ", Area: domain.AreaPhysicalHealth})
		require.NoError(t, err)
		assert.Equal(t, 2024, goal.Year)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject unknown focus area", func(t *testing.T) {
		repo := new(MockMacroGoalRepo)
		uc := usecase.NewGoalUsecase(repo, newCalculator(), usecase.NewValidator())

		_, err := uc.CreateGoal(ctx, "u1", domain.MacroGoalInput{Title: "Leer", Area: "spiritual"})
		requireAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGoalOwnership(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMacroGoalRepo)
	uc := usecase.NewGoalUsecase(repo, newCalculator(), usecase.NewValidator())

	repo.On("GetByID", ctx, "g1").Return(&domain.MacroGoal{ID: "g1", UserID: "owner", Status: domain.GoalStatusActive}, nil)
	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	t.Run("Should hide other users' goals", func(t *testing.T) {
		_, err := uc.GetGoal(ctx, "intruder", "g1")
		requireAppError(t, err, http.StatusNotFound)

		err = uc.DeleteGoal(ctx, "intruder", "g1")
		requireAppError(t, err, http.StatusNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should map missing rows to 404", func(t *testing.T) {
		_, err := uc.GetGoal(ctx, "owner", "missing")
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should change status for the owner", func(t *testing.T) {
		repo.On("Update", ctx, mock.AnythingOfType("*domain.MacroGoal")).Return(nil).Once()
		goal, err := uc.SetStatus(ctx, "owner", "g1", domain.GoalStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.GoalStatusCompleted, goal.Status)
	})

	t.Run("Should reject unknown status", func(t *testing.T) {
		_, err := uc.SetStatus(ctx, "owner", "g1", "paused")
		requireAppError(t, err, http.StatusBadRequest)
	})
}

func TestListGoalsRejectsUnknownStatus(t *testing.T) {
	repo := new(MockMacroGoalRepo)
	uc := usecase.NewGoalUsecase(repo, newCalculator(), usecase.NewValidator())

	_, err := uc.ListGoals(context.Background(), "u1", domain.MacroGoalFilter{Status: "nope"})
	requireAppError(t, err, http.StatusBadRequest)
}
