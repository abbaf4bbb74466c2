package postgres

import (
	"context"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/leaderboard"

	"github.com/jackc/pgx/v5/pgxpool"
)

type rankingRepo struct {
	db *pgxpool.Pool
}

func NewRankingRepository(db *pgxpool.Pool) domain.RankingRepository {
	return &rankingRepo{db: db}
}

func (r *rankingRepo) SaveScore(ctx context.Context, userID, category, weekStart string, score int) error {
	if score <= 0 {
		_, err := r.db.Exec(ctx,
			`DELETE FROM rankings WHERE user_id = $1 AND category = $2 AND week_start = $3::date`,
			userID, category, weekStart)
		return mapError("delete ranking", err)
	}

	query := `INSERT INTO rankings (user_id, category, week_start, score, created_at, updated_at)
              VALUES ($1, $2, $3::date, $4, NOW(), NOW())
              ON CONFLICT (user_id, category, week_start) DO UPDATE SET
                score = EXCLUDED.score,
                updated_at = NOW()`
	_, err := r.db.Exec(ctx, query, userID, category, weekStart, score)
	return mapError("save ranking", err)
}

func (r *rankingRepo) ListByWeek(ctx context.Context, weekStart string) ([]leaderboard.Entry, error) {
	query := `SELECT r.user_id, r.category, r.score,
                     COALESCE(NULLIF(p.full_name, ''), 'Anónimo'), COALESCE(p.avatar_url, '')
              FROM rankings r
              JOIN profiles p ON p.id = r.user_id
              WHERE r.week_start = $1::date
              ORDER BY r.score DESC, r.updated_at`
	rows, err := r.db.Query(ctx, query, weekStart)
	if err != nil {
		return nil, mapError("list rankings", err)
	}
	defer rows.Close()

	entries := make([]leaderboard.Entry, 0)
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.UserID, &e.Category, &e.Score, &e.FullName, &e.Avatar); err != nil {
			return nil, mapError("list rankings", err)
		}
		entries = append(entries, e)
	}
	return entries, mapError("list rankings", rows.Err())
}
