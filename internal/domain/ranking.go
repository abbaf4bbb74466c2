package domain

import (
	"context"
	"time"

	"goals-project-backend/pkg/leaderboard"
)

// Ranking is a user's score in one category for one week.
type Ranking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	WeekStart string    `json:"week_start"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryBoard is one category's leaderboard.
type CategoryBoard struct {
	Category string              `json:"category"`
	Label    string              `json:"label"`
	Entries  []leaderboard.Entry `json:"entries"`
}

type RankingsView struct {
	Week      WeekView               `json:"week"`
	Boards    []CategoryBoard        `json:"boards"`
	Positions []leaderboard.Position `json:"my_positions"`
}

type RankingRepository interface {
	// SaveScore upserts the row for (user, category, week); a score of 0 removes it.
	SaveScore(ctx context.Context, userID, category, weekStart string, score int) error
	// ListByWeek returns every row of the week joined with profile display data.
	ListByWeek(ctx context.Context, weekStart string) ([]leaderboard.Entry, error)
}

type RankingUsecase interface {
	GetRankings(ctx context.Context, userID, date string) (*RankingsView, error)
	// RecomputeScore refreshes the user's score in category for the week starting at weekStart.
	RecomputeScore(ctx context.Context, userID, category, weekStart string) error
}
