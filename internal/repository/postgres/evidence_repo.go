package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const evidenceColumns = `id, micro_goal_id, user_id, image_url, caption, status, expires_at, created_at`

type evidenceRepo struct {
	db *pgxpool.Pool
}

func NewEvidenceRepository(db *pgxpool.Pool) domain.EvidenceRepository {
	return &evidenceRepo{db: db}
}

func scanEvidence(row pgx.Row) (*domain.Evidence, error) {
	var e domain.Evidence
	if err := row.Scan(&e.ID, &e.MicroGoalID, &e.UserID, &e.ImageURL, &e.Caption, &e.Status, &e.ExpiresAt, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *evidenceRepo) Create(ctx context.Context, e *domain.Evidence) error {
	query := `INSERT INTO evidence (micro_goal_id, user_id, image_url, caption, status, expires_at, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, e.MicroGoalID, e.UserID, e.ImageURL, e.Caption, e.Status, e.ExpiresAt).
		Scan(&e.ID, &e.CreatedAt)
	return mapError("create evidence", err)
}

func (r *evidenceRepo) GetByID(ctx context.Context, id string) (*domain.Evidence, error) {
	e, err := scanEvidence(r.db.QueryRow(ctx, `SELECT `+evidenceColumns+` FROM evidence WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get evidence", err)
	}
	return e, nil
}

func (r *evidenceRepo) ListByGoal(ctx context.Context, microGoalID string) ([]domain.Evidence, error) {
	byGoal, err := r.ListByGoals(ctx, []string{microGoalID})
	if err != nil {
		return nil, err
	}
	if list, ok := byGoal[microGoalID]; ok {
		return list, nil
	}
	return []domain.Evidence{}, nil
}

func (r *evidenceRepo) ListByGoals(ctx context.Context, microGoalIDs []string) (map[string][]domain.Evidence, error) {
	result := make(map[string][]domain.Evidence, len(microGoalIDs))
	if len(microGoalIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + evidenceColumns + ` FROM evidence
              WHERE micro_goal_id::text = ANY($1)
              ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, pq.Array(microGoalIDs))
	if err != nil {
		return nil, mapError("list evidence", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEvidence(rows)
		if err != nil {
			return nil, mapError("list evidence", err)
		}
		result[e.MicroGoalID] = append(result[e.MicroGoalID], *e)
	}
	return result, mapError("list evidence", rows.Err())
}

func (r *evidenceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM evidence WHERE id = $1`, id)
	if err != nil {
		return mapError("delete evidence", err)
	}
	return expectOne(tag.RowsAffected())
}
