package domain

import (
	"context"
	"time"

	"goals-project-backend/pkg/matching"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Focus areas a profile (and a macro goal) can belong to.
const (
	AreaPhysicalHealth  = "physical_health"
	AreaEmotionalHealth = "emotional_health"
	AreaProfessional    = "professional"
	AreaPersonal        = "personal"
)

// FocusAreas lists the fixed focus area vocabulary in display order.
var FocusAreas = []Option{
	{ID: AreaPhysicalHealth, Label: "Salud Física"},
	{ID: AreaEmotionalHealth, Label: "Salud Emocional"},
	{ID: AreaProfessional, Label: "Profesional/Trabajo"},
	{ID: AreaPersonal, Label: "Personal"},
}

// Option is an id with its display label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// OptionIDs returns the ids of opts in order.
func OptionIDs(opts []Option) []string {
	ids := make([]string, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	return ids
}

// Profile is the app-level user record; id is the Supabase auth uid.
type Profile struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	FullName              *string   `json:"full_name"`
	Bio                   *string   `json:"bio"`
	WhatMakesYouDifferent *string   `json:"what_makes_you_different"`
	AvatarURL             *string   `json:"avatar_url"`
	Instagram             *string   `json:"instagram"`
	LinkedIn              *string   `json:"linkedin"`
	Interests             []string  `json:"interests"`
	FocusAreas            []string  `json:"focus_areas"`
	Role                  string    `json:"role"`
	OnboardingCompleted   bool      `json:"onboarding_completed"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Tags parses the profile's tag columns into scorer input. NULL columns are empty sets.
func (p *Profile) Tags() (matching.ProfileTags, error) {
	var focus, interests any
	if p.FocusAreas != nil {
		focus = p.FocusAreas
	}
	if p.Interests != nil {
		interests = p.Interests
	}
	return matching.ParseProfileTags(focus, interests)
}

// DisplayName falls back to the email when no name is set.
func (p *Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}

// PublicProfile is what other users see on match cards and leaderboards.
type PublicProfile struct {
	ID                    string   `json:"id"`
	FullName              *string  `json:"full_name"`
	Bio                   *string  `json:"bio"`
	WhatMakesYouDifferent *string  `json:"what_makes_you_different"`
	AvatarURL             *string  `json:"avatar_url"`
	Instagram             *string  `json:"instagram"`
	LinkedIn              *string  `json:"linkedin"`
	FocusAreas            []string `json:"focus_areas"`
	Interests             []string `json:"interests"`
}

func (p *Profile) Public() PublicProfile {
	return PublicProfile{
		ID:                    p.ID,
		FullName:              p.FullName,
		Bio:                   p.Bio,
		WhatMakesYouDifferent: p.WhatMakesYouDifferent,
		AvatarURL:             p.AvatarURL,
		Instagram:             p.Instagram,
		LinkedIn:              p.LinkedIn,
		FocusAreas:            nonNil(p.FocusAreas),
		Interests:             nonNil(p.Interests),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// OnboardingInput is submitted once, right after sign-up.
type OnboardingInput struct {
	FullName              string   `json:"full_name" validate:"required,valid_name,max=100"`
	Bio                   string   `json:"bio" validate:"max=500"`
	WhatMakesYouDifferent string   `json:"what_makes_you_different" validate:"max=500"`
	FocusAreas            []string `json:"focus_areas" validate:"required,min=1,max=4,focus_area"`
	Interests             []string `json:"interests" validate:"max=20,dive,tag"`
	Instagram             string   `json:"instagram" validate:"social_handle"`
	LinkedIn              string   `json:"linkedin" validate:"social_handle"`
}

// ProfileUpdateInput is a partial update; nil fields are left unchanged.
type ProfileUpdateInput struct {
	FullName              *string  `json:"full_name" validate:"omitempty,valid_name,max=100"`
	Bio                   *string  `json:"bio" validate:"omitempty,max=500"`
	WhatMakesYouDifferent *string  `json:"what_makes_you_different" validate:"omitempty,max=500"`
	AvatarURL             *string  `json:"avatar_url" validate:"omitempty,url,max=500"`
	Instagram             *string  `json:"instagram" validate:"omitempty,social_handle"`
	LinkedIn              *string  `json:"linkedin" validate:"omitempty,social_handle"`
	FocusAreas            []string `json:"focus_areas" validate:"omitempty,min=1,max=4,focus_area"`
	Interests             []string `json:"interests" validate:"omitempty,max=20,dive,tag"`
}

type ProfileRepository interface {
	// Create inserts the profile unless a row with the same id exists.
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdateRole(ctx context.Context, id, role string) error
	// ListMatchable returns onboarded profiles other than excludeID.
	ListMatchable(ctx context.Context, excludeID string) ([]Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]Profile, error)
}

type ProfileUsecase interface {
	// EnsureProfile returns the caller's profile, creating it on first sight.
	EnsureProfile(ctx context.Context, id, email string) (*Profile, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	UpdateProfile(ctx context.Context, id string, in ProfileUpdateInput) (*Profile, error)
	CompleteOnboarding(ctx context.Context, id string, in OnboardingInput) (*Profile, error)
}
