package domain

import (
	"context"
	"math"
	"time"
)

// WeeklyReview is the note a user saves when closing a week.
type WeeklyReview struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	WeekStart      string    `json:"week_start"`
	WeekEnd        string    `json:"week_end"`
	Notes          *string   `json:"notes"`
	GoalsCompleted int       `json:"goals_completed"`
	GoalsTotal     int       `json:"goals_total"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompletionRate of the saved counts.
func (r *WeeklyReview) CompletionRate() int {
	return CompletionRate(r.GoalsCompleted, r.GoalsTotal)
}

type ReviewInput struct {
	Notes string `json:"notes" validate:"max=5000"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Performance is the qualitative verdict for a completion rate.
type Performance struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Trend   string `json:"trend"`
}

// ReviewSummary is a week's progress as shown on the review screen.
type ReviewSummary struct {
	Week           WeekView      `json:"week"`
	Goals          []MicroGoal   `json:"goals"`
	Completed      int           `json:"completed"`
	Total          int           `json:"total"`
	CompletionRate int           `json:"completion_rate"`
	Performance    Performance   `json:"performance"`
	Review         *WeeklyReview `json:"review"`
}

// CompletionRate is round(completed/total*100), or 0 with no goals.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// PerformanceFor maps a completion rate to its label, message and trend marker.
func PerformanceFor(rate int) Performance {
	p := Performance{}
	switch {
	case rate >= 90:
		p.Label, p.Message = "🌟 Excelente", "¡Excelente semana! 🌟"
	case rate >= 70:
		p.Label, p.Message = "💪 Muy Bien", "Buena semana. Vamos por más 💪"
	case rate >= 50:
		p.Label, p.Message = "🤔 Regular", "Semana regular. Identificar bloques 🤔"
	default:
		p.Label, p.Message = "🔍 Desafiante", "Semana desafiante. ¿Qué no funcionó? 🔍"
	}

	switch {
	case rate >= 70:
		p.Trend = "📈"
	case rate >= 50:
		p.Trend = "➡️"
	default:
		p.Trend = "📉"
	}
	return p
}

type ReviewRepository interface {
	// Upsert inserts or replaces the review for (user, week_start).
	Upsert(ctx context.Context, r *WeeklyReview) error
	GetByWeek(ctx context.Context, userID, weekStart string) (*WeeklyReview, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]WeeklyReview, error)
}

type ReviewUsecase interface {
	GetSummary(ctx context.Context, userID, date string) (*ReviewSummary, error)
	BuildReport(ctx context.Context, userID, date string) (string, error)
	SaveReview(ctx context.Context, userID string, in ReviewInput) (*WeeklyReview, error)
	History(ctx context.Context, userID string, limit int) ([]WeeklyReview, error)
}
