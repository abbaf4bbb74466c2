package domain

import (
	"context"
	"time"
)

// AdminStats contains dashboard statistics
type AdminStats struct {
	TotalUsers          int64 `json:"total_users"`
	OnboardedUsers      int64 `json:"onboarded_users"`
	TotalMacroGoals     int64 `json:"total_macro_goals"`
	TotalMicroGoals     int64 `json:"total_micro_goals"`
	CompletedMicroGoals int64 `json:"completed_micro_goals"`
	CompletionRate      int   `json:"completion_rate"`
	TotalMatches        int64 `json:"total_matches"`
}

// AdminUserRow is a profile with its goal counters, used by listings and exports.
type AdminUserRow struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	FullName            *string   `json:"full_name"`
	Role                string    `json:"role"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	MacroGoals          int64     `json:"macro_goals"`
	MicroGoals          int64     `json:"micro_goals"`
	CompletedMicroGoals int64     `json:"completed_micro_goals"`
	CreatedAt           time.Time `json:"created_at"`
}

type RoleInput struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// AdminRepository defines admin-specific data access
type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, limit int) ([]AdminUserRow, error)
}

// AdminUsecase defines admin business logic
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	RecentUsers(ctx context.Context, limit int) ([]AdminUserRow, error)
	// ExportUsers renders every user as an XLSX workbook.
	ExportUsers(ctx context.Context, adminID string) ([]byte, error)
	AssignRole(ctx context.Context, adminID, userID, role string) (*Profile, error)
}
