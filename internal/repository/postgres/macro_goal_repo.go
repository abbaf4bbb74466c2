package postgres

import (
	"context"
	"fmt"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const macroGoalColumns = `id, user_id, title, description, area, year, status, created_at, updated_at`

type macroGoalRepo struct {
	db *pgxpool.Pool
}

func NewMacroGoalRepository(db *pgxpool.Pool) domain.MacroGoalRepository {
	return &macroGoalRepo{db: db}
}

func scanMacroGoal(row pgx.Row) (*domain.MacroGoal, error) {
	var g domain.MacroGoal
	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Area, &g.Year, &g.Status, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *macroGoalRepo) Create(ctx context.Context, g *domain.MacroGoal) error {
	query := `INSERT INTO macro_goals (user_id, title, description, area, year, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, g.UserID, g.Title, g.Description, g.Area, g.Year, g.Status).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	return mapError("create macro goal", err)
}

func (r *macroGoalRepo) GetByID(ctx context.Context, id string) (*domain.MacroGoal, error) {
	g, err := scanMacroGoal(r.db.QueryRow(ctx, `SELECT `+macroGoalColumns+` FROM macro_goals WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get macro goal", err)
	}
	return g, nil
}

func (r *macroGoalRepo) ListByUser(ctx context.Context, userID string, filter domain.MacroGoalFilter) ([]domain.MacroGoal, error) {
	query := `SELECT ` + macroGoalColumns + ` FROM macro_goals WHERE user_id = $1`
	args := []any{userID}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list macro goals", err)
	}
	defer rows.Close()

	goals := make([]domain.MacroGoal, 0)
	for rows.Next() {
		g, err := scanMacroGoal(rows)
		if err != nil {
			return nil, mapError("list macro goals", err)
		}
		goals = append(goals, *g)
	}
	return goals, mapError("list macro goals", rows.Err())
}

func (r *macroGoalRepo) Update(ctx context.Context, g *domain.MacroGoal) error {
	query := `UPDATE macro_goals SET title = $2, description = $3, area = $4, year = $5, status = $6, updated_at = NOW()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, g.ID, g.Title, g.Description, g.Area, g.Year, g.Status).Scan(&g.UpdatedAt)
	return mapError("update macro goal", err)
}

func (r *macroGoalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM macro_goals WHERE id = $1`, id)
	if err != nil {
		return mapError("delete macro goal", err)
	}
	return expectOne(tag.RowsAffected())
}

func (r *macroGoalRepo) CountByStatus(ctx context.Context, userID, status string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM macro_goals WHERE user_id = $1 AND status = $2`, userID, status).Scan(&n)
	return n, mapError("count macro goals", err)
}
