package domain

import (
	"context"
	"time"

	"goals-project-backend/pkg/week"
)

// Categories weekly goals are normalized into for the rankings.
var NormalizedCategories = []Option{
	{ID: "gym", Label: "Ir al gimnasio"},
	{ID: "reading", Label: "Leer más"},
	{ID: "nutrition", Label: "Comer bien"},
	{ID: "sleep", Label: "Dormir a la misma hora"},
	{ID: "meditation", Label: "Meditar"},
	{ID: "learning", Label: "Aprender algo nuevo"},
	{ID: "networking", Label: "Networking"},
	{ID: "side_project", Label: "Proyecto personal"},
	{ID: "exercise", Label: "Ejercicio general"},
	{ID: "other", Label: "Otro"},
}

// CategoryLabel returns the display label of a category id, or the id itself.
func CategoryLabel(id string) string {
	for _, c := range NormalizedCategories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// MicroGoal is a goal scoped to one Monday..Sunday week.
// WeekStart and WeekEnd are calendar dates (YYYY-MM-DD).
type MicroGoal struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	MacroGoalID        *string    `json:"macro_goal_id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	NormalizedCategory *string    `json:"normalized_category"`
	WeekStart          string     `json:"week_start"`
	WeekEnd            string     `json:"week_end"`
	Completed          bool       `json:"completed"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	Evidence           []Evidence `json:"evidence,omitempty"`
}

// Category returns the normalized category or "" when unset.
func (g *MicroGoal) Category() string {
	if g.NormalizedCategory == nil {
		return ""
	}
	return *g.NormalizedCategory
}

type WeeklyGoalInput struct {
	Title              string  `json:"title" validate:"required,min=3,max=200"`
	Description        *string `json:"description" validate:"omitempty,max=2000"`
	NormalizedCategory string  `json:"normalized_category" validate:"required,goal_category"`
	MacroGoalID        *string `json:"macro_goal_id" validate:"omitempty,uuid"`
}

// WeekSelector picks the week a new weekly goal is planned for.
type WeekSelector string

const (
	WeekCurrent WeekSelector = "current"
	WeekNext    WeekSelector = "next"
)

// WeekView is a week.Info ready for JSON clients.
type WeekView struct {
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
	WeekNumber int    `json:"week_number"`
	Year       int    `json:"year"`
	Label      string `json:"label"`
}

func NewWeekView(info week.Info) WeekView {
	return WeekView{
		WeekStart:  info.StartDate(),
		WeekEnd:    info.EndDate(),
		WeekNumber: info.WeekNumber,
		Year:       info.Year,
		Label:      info.Label(),
	}
}

type WeeklyGoalList struct {
	Week      WeekView    `json:"week"`
	Goals     []MicroGoal `json:"goals"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
}

type MicroGoalRepository interface {
	Create(ctx context.Context, g *MicroGoal) error
	GetByID(ctx context.Context, id string) (*MicroGoal, error)
	// ListByWeek returns goals with week_start >= weekStart and week_end <= weekEnd, newest first.
	ListByWeek(ctx context.Context, userID, weekStart, weekEnd string) ([]MicroGoal, error)
	Update(ctx context.Context, g *MicroGoal) error
	SetCompleted(ctx context.Context, id string, completed bool) (*MicroGoal, error)
	Delete(ctx context.Context, id string) error
	CountCompleted(ctx context.Context, userID, category, weekStart string) (int, error)
}

type WeeklyGoalUsecase interface {
	CreateWeeklyGoal(ctx context.Context, userID string, in WeeklyGoalInput, which WeekSelector) (*MicroGoal, error)
	ListWeeklyGoals(ctx context.Context, userID, date string) (*WeeklyGoalList, error)
	GetWeeklyGoal(ctx context.Context, userID, id string) (*MicroGoal, error)
	UpdateWeeklyGoal(ctx context.Context, userID, id string, in WeeklyGoalInput) (*MicroGoal, error)
	ToggleCompletion(ctx context.Context, userID, id string) (*MicroGoal, error)
	DeleteWeeklyGoal(ctx context.Context, userID, id string) error
}
