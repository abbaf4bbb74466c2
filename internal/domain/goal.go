package domain

import (
	"context"
	"time"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

// MacroGoal is a yearly objective in one focus area.
type MacroGoal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Area        string    `json:"area"`
	Year        int       `json:"year"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MacroGoalInput struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Area        string  `json:"area" validate:"required,focus_area"`
	Year        int     `json:"year" validate:"omitempty,min=2000,max=2100"`
}

type MacroGoalStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active completed abandoned"`
}

// MacroGoalFilter narrows a goal listing; zero values mean "any".
type MacroGoalFilter struct {
	Year   int
	Status string
}

type MacroGoalRepository interface {
	Create(ctx context.Context, g *MacroGoal) error
	GetByID(ctx context.Context, id string) (*MacroGoal, error)
	ListByUser(ctx context.Context, userID string, filter MacroGoalFilter) ([]MacroGoal, error)
	Update(ctx context.Context, g *MacroGoal) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, userID, status string) (int, error)
}

type GoalUsecase interface {
	CreateGoal(ctx context.Context, userID string, in MacroGoalInput) (*MacroGoal, error)
	GetGoal(ctx context.Context, userID, id string) (*MacroGoal, error)
	ListGoals(ctx context.Context, userID string, filter MacroGoalFilter) ([]MacroGoal, error)
	UpdateGoal(ctx context.Context, userID, id string, in MacroGoalInput) (*MacroGoal, error)
	SetStatus(ctx context.Context, userID, id, status string) (*MacroGoal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
}
