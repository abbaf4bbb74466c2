package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats fetches dashboard statistics
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}

	query := `SELECT
                (SELECT COUNT(*) FROM profiles),
                (SELECT COUNT(*) FROM profiles WHERE onboarding_completed = true),
                (SELECT COUNT(*) FROM macro_goals),
                (SELECT COUNT(*) FROM micro_goals),
                (SELECT COUNT(*) FROM micro_goals WHERE completed = true)`
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.OnboardedUsers, &stats.TotalMacroGoals,
		&stats.TotalMicroGoals, &stats.CompletedMicroGoals,
	)
	if err != nil {
		return nil, mapError("admin stats", err)
	}

	// matches is created by a later migration; older databases may not have it
	var tableExists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'matches')`).Scan(&tableExists)
	if err == nil && tableExists {
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM matches`).Scan(&stats.TotalMatches); err != nil {
			return nil, mapError("admin stats", err)
		}
	}

	return stats, nil
}

// ListUsers returns the newest profiles with their goal counters. limit <= 0 returns all rows.
func (r *adminRepo) ListUsers(ctx context.Context, limit int) ([]domain.AdminUserRow, error) {
	query := `SELECT p.id, p.email, p.full_name, p.role, p.onboarding_completed, p.created_at,
                     (SELECT COUNT(*) FROM macro_goals g WHERE g.user_id = p.id),
                     (SELECT COUNT(*) FROM micro_goals m WHERE m.user_id = p.id),
                     (SELECT COUNT(*) FROM micro_goals m WHERE m.user_id = p.id AND m.completed = true)
              FROM profiles p
              ORDER BY p.created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list users", err)
	}
	defer rows.Close()

	users := make([]domain.AdminUserRow, 0)
	for rows.Next() {
		var u domain.AdminUserRow
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FullName, &u.Role, &u.OnboardingCompleted, &u.CreatedAt,
			&u.MacroGoals, &u.MicroGoals, &u.CompletedMicroGoals,
		); err != nil {
			return nil, mapError("list users", err)
		}
		users = append(users, u)
	}
	return users, mapError("list users", rows.Err())
}
