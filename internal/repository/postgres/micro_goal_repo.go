package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// week bounds are DATE columns; they travel as YYYY-MM-DD text both ways
const microGoalColumns = `id, user_id, macro_goal_id, title, description, normalized_category,
	week_start::text, week_end::text, completed, created_at, updated_at`

type microGoalRepo struct {
	db *pgxpool.Pool
}

func NewMicroGoalRepository(db *pgxpool.Pool) domain.MicroGoalRepository {
	return &microGoalRepo{db: db}
}

func scanMicroGoal(row pgx.Row) (*domain.MicroGoal, error) {
	var g domain.MicroGoal
	err := row.Scan(
		&g.ID, &g.UserID, &g.MacroGoalID, &g.Title, &g.Description, &g.NormalizedCategory,
		&g.WeekStart, &g.WeekEnd, &g.Completed, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *microGoalRepo) Create(ctx context.Context, g *domain.MicroGoal) error {
	query := `INSERT INTO micro_goals (user_id, macro_goal_id, title, description, normalized_category, week_start, week_end, completed, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, false, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		g.UserID, g.MacroGoalID, g.Title, g.Description, g.NormalizedCategory, g.WeekStart, g.WeekEnd,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	return mapError("create micro goal", err)
}

func (r *microGoalRepo) GetByID(ctx context.Context, id string) (*domain.MicroGoal, error) {
	g, err := scanMicroGoal(r.db.QueryRow(ctx, `SELECT `+microGoalColumns+` FROM micro_goals WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get micro goal", err)
	}
	return g, nil
}

func (r *microGoalRepo) ListByWeek(ctx context.Context, userID, weekStart, weekEnd string) ([]domain.MicroGoal, error) {
	query := `SELECT ` + microGoalColumns + ` FROM micro_goals
              WHERE user_id = $1 AND week_start >= $2::date AND week_end <= $3::date
              ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID, weekStart, weekEnd)
	if err != nil {
		return nil, mapError("list micro goals", err)
	}
	defer rows.Close()

	goals := make([]domain.MicroGoal, 0)
	for rows.Next() {
		g, err := scanMicroGoal(rows)
		if err != nil {
			return nil, mapError("list micro goals", err)
		}
		goals = append(goals, *g)
	}
	return goals, mapError("list micro goals", rows.Err())
}

func (r *microGoalRepo) Update(ctx context.Context, g *domain.MicroGoal) error {
	query := `UPDATE micro_goals SET macro_goal_id = $2, title = $3, description = $4, normalized_category = $5, updated_at = NOW()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, g.ID, g.MacroGoalID, g.Title, g.Description, g.NormalizedCategory).Scan(&g.UpdatedAt)
	return mapError("update micro goal", err)
}

func (r *microGoalRepo) SetCompleted(ctx context.Context, id string, completed bool) (*domain.MicroGoal, error) {
	query := `UPDATE micro_goals SET completed = $2, updated_at = NOW() WHERE id = $1
              RETURNING ` + microGoalColumns
	g, err := scanMicroGoal(r.db.QueryRow(ctx, query, id, completed))
	if err != nil {
		return nil, mapError("set micro goal completion", err)
	}
	return g, nil
}

func (r *microGoalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM micro_goals WHERE id = $1`, id)
	if err != nil {
		return mapError("delete micro goal", err)
	}
	return expectOne(tag.RowsAffected())
}

func (r *microGoalRepo) CountCompleted(ctx context.Context, userID, category, weekStart string) (int, error) {
	query := `SELECT COUNT(*) FROM micro_goals
              WHERE user_id = $1 AND normalized_category = $2 AND week_start = $3::date AND completed = true`
	var n int
	err := r.db.QueryRow(ctx, query, userID, category, weekStart).Scan(&n)
	return n, mapError("count completed micro goals", err)
}
