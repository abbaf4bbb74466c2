package postgres

import (
	"errors"
	"fmt"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

// mapError translates driver errors into domain errors; op prefixes anything else.
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case database.IsUniqueViolation(err):
		return domain.ErrConflict
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// expectOne reports ErrNotFound when a write touched no rows.
func expectOne(rowsAffected int64) error {
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
