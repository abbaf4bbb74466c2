package usecase

import (
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom rules and the app vocabularies registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	validation.RegisterVocabulary(v, "focus_area", domain.OptionIDs(domain.FocusAreas))
	validation.RegisterVocabulary(v, "goal_category", domain.OptionIDs(domain.NormalizedCategories))
	return v
}
