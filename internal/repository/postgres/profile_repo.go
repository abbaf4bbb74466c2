package postgres

import (
	"context"

	"goals-project-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const profileColumns = `id, email, full_name, bio, what_makes_you_different, avatar_url, instagram, linkedin,
	interests, focus_areas, role, onboarding_completed, created_at, updated_at`

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.Bio, &p.WhatMakesYouDifferent, &p.AvatarURL, &p.Instagram, &p.LinkedIn,
		pq.Array(&p.Interests), pq.Array(&p.FocusAreas), &p.Role, &p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, role, onboarding_completed, created_at, updated_at)
              VALUES ($1, $2, $3, false, NOW(), NOW())
              ON CONFLICT (id) DO NOTHING
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, p.ID, p.Email, p.Role).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		// another request created it first
		return nil
	}
	return mapError("create profile", err)
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError("get profile", err)
	}
	return p, nil
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET
                full_name = $2, bio = $3, what_makes_you_different = $4, avatar_url = $5,
                instagram = $6, linkedin = $7, interests = $8, focus_areas = $9,
                onboarding_completed = $10, updated_at = NOW()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.FullName, p.Bio, p.WhatMakesYouDifferent, p.AvatarURL,
		p.Instagram, p.LinkedIn, pq.Array(p.Interests), pq.Array(p.FocusAreas),
		p.OnboardingCompleted,
	).Scan(&p.UpdatedAt)
	return mapError("update profile", err)
}

func (r *profileRepo) UpdateRole(ctx context.Context, id, role string) error {
	tag, err := r.db.Exec(ctx, `UPDATE profiles SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return mapError("update role", err)
	}
	return expectOne(tag.RowsAffected())
}

func (r *profileRepo) ListMatchable(ctx context.Context, excludeID string) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
              WHERE id <> $1 AND onboarding_completed = true
              ORDER BY created_at`
	return r.list(ctx, "list matchable profiles", query, excludeID)
}

func (r *profileRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id::text = ANY($1)`
	return r.list(ctx, "get profiles", query, pq.Array(ids))
}

func (r *profileRepo) list(ctx context.Context, op, query string, args ...any) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, mapError(op, rows.Err())
}
