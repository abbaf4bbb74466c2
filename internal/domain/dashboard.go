package domain

import "context"

// Dashboard is the landing screen of a signed-in user.
type Dashboard struct {
	Profile          *Profile    `json:"profile"`
	ActiveMacroGoals int         `json:"active_macro_goals"`
	Week             WeekView    `json:"week"`
	Goals            []MicroGoal `json:"goals"`
	Completed        int         `json:"completed"`
	Total            int         `json:"total"`
	CompletionRate   int         `json:"completion_rate"`
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
}
