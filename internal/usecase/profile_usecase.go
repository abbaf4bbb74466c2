package usecase

import (
	"context"
	"errors"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/matching"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) EnsureProfile(ctx context.Context, id, email string) (*domain.Profile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Creating profile on first sign-in", "user_id", id)
	if err := u.repo.Create(ctx, &domain.Profile{ID: id, Email: email, Role: domain.RoleUser}); err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}

	profile, err = u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdateInput) (*domain.Profile, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}

	if in.FullName != nil {
		profile.FullName = trimmedPtr(in.FullName)
	}
	if in.Bio != nil {
		profile.Bio = trimmedPtr(in.Bio)
	}
	if in.WhatMakesYouDifferent != nil {
		profile.WhatMakesYouDifferent = trimmedPtr(in.WhatMakesYouDifferent)
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = trimmedPtr(in.AvatarURL)
	}
	if in.Instagram != nil {
		profile.Instagram = trimmedPtr(in.Instagram)
	}
	if in.LinkedIn != nil {
		profile.LinkedIn = trimmedPtr(in.LinkedIn)
	}
	if in.FocusAreas != nil {
		if profile.FocusAreas, err = normalizeTags(in.FocusAreas); err != nil {
			return nil, err
		}
	}
	if in.Interests != nil {
		if profile.Interests, err = normalizeTags(in.Interests); err != nil {
			return nil, err
		}
	}

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}
	return profile, nil
}

func (u *profileUsecase) CompleteOnboarding(ctx context.Context, id string, in domain.OnboardingInput) (*domain.Profile, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}

	focus, err := normalizeTags(in.FocusAreas)
	if err != nil {
		return nil, err
	}
	interests, err := normalizeTags(in.Interests)
	if err != nil {
		return nil, err
	}

	profile.FullName = optionalString(in.FullName)
	profile.Bio = optionalString(in.Bio)
	profile.WhatMakesYouDifferent = optionalString(in.WhatMakesYouDifferent)
	profile.Instagram = optionalString(in.Instagram)
	profile.LinkedIn = optionalString(in.LinkedIn)
	profile.FocusAreas = focus
	profile.Interests = interests
	profile.OnboardingCompleted = true

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, repoError(err, "Perfil no encontrado")
	}
	return profile, nil
}

// normalizeTags de-duplicates tags keeping first occurrence order.
func normalizeTags(tags []string) ([]string, error) {
	set, err := matching.ParseTagSet(tags)
	if err != nil {
		return nil, tagError(err)
	}
	return []string(set), nil
}
