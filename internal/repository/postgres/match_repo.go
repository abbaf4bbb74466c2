package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const matchColumns = `id, user_id_1, user_id_2, compatibility_score, common_goals, status, created_at`

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.RequesterID, &m.AddresseeID, &m.Score, pq.Array(&m.CommonGoals), &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if m.CommonGoals == nil {
		m.CommonGoals = []string{}
	}
	return &m, nil
}

func (r *matchRepo) Create(ctx context.Context, m *domain.Match) error {
	query := `INSERT INTO matches (user_id_1, user_id_2, compatibility_score, common_goals, status, created_at)
              VALUES ($1, $2, $3, $4, $5, NOW())
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, m.RequesterID, m.AddresseeID, m.Score, pq.Array(m.CommonGoals), m.Status).
		Scan(&m.ID, &m.CreatedAt)
	return mapError("create match", err)
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	m, err := scanMatch(r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get match", err)
	}
	return m, nil
}

func (r *matchRepo) FindBetween(ctx context.Context, a, b string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
              WHERE (user_id_1 = $1 AND user_id_2 = $2) OR (user_id_1 = $2 AND user_id_2 = $1)
              ORDER BY created_at DESC
              LIMIT 1`
	m, err := scanMatch(r.db.QueryRow(ctx, query, a, b))
	if err != nil {
		return nil, mapError("find match", err)
	}
	return m, nil
}

func (r *matchRepo) ListByUser(ctx context.Context, userID string) ([]domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
              WHERE user_id_1 = $1 OR user_id_2 = $1
              ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError("list matches", err)
	}
	defer rows.Close()

	matches := make([]domain.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, mapError("list matches", err)
		}
		matches = append(matches, *m)
	}
	return matches, mapError("list matches", rows.Err())
}

func (r *matchRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Match, error) {
	query := `UPDATE matches SET status = $2 WHERE id = $1 RETURNING ` + matchColumns
	m, err := scanMatch(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		return nil, mapError("update match", err)
	}
	return m, nil
}
