package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, user_id, week_start::text, week_end::text, notes, goals_completed, goals_total, created_at`

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func scanReview(row pgx.Row) (*domain.WeeklyReview, error) {
	var w domain.WeeklyReview
	err := row.Scan(&w.ID, &w.UserID, &w.WeekStart, &w.WeekEnd, &w.Notes, &w.GoalsCompleted, &w.GoalsTotal, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *reviewRepo) Upsert(ctx context.Context, w *domain.WeeklyReview) error {
	query := `INSERT INTO weekly_reviews (user_id, week_start, week_end, notes, goals_completed, goals_total, created_at)
              VALUES ($1, $2::date, $3::date, $4, $5, $6, NOW())
              ON CONFLICT (user_id, week_start) DO UPDATE SET
                notes = EXCLUDED.notes,
                goals_completed = EXCLUDED.goals_completed,
                goals_total = EXCLUDED.goals_total
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, w.UserID, w.WeekStart, w.WeekEnd, w.Notes, w.GoalsCompleted, w.GoalsTotal).
		Scan(&w.ID, &w.CreatedAt)
	return mapError("upsert weekly review", err)
}

func (r *reviewRepo) GetByWeek(ctx context.Context, userID, weekStart string) (*domain.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE user_id = $1 AND week_start = $2::date`
	w, err := scanReview(r.db.QueryRow(ctx, query, userID, weekStart))
	if err != nil {
		return nil, mapError("get weekly review", err)
	}
	return w, nil
}

func (r *reviewRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.WeeklyReview, error) {
	query := `SELECT ` + reviewColumns + ` FROM weekly_reviews WHERE user_id = $1 ORDER BY week_start DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, mapError("list weekly reviews", err)
	}
	defer rows.Close()

	reviews := make([]domain.WeeklyReview, 0)
	for rows.Next() {
		w, err := scanReview(rows)
		if err != nil {
			return nil, mapError("list weekly reviews", err)
		}
		reviews = append(reviews, *w)
	}
	return reviews, mapError("list weekly reviews", rows.Err())
}
