package usecase

import (
	"errors"
	"strings"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/matching"
	"goals-project-backend/pkg/validation"
	"goals-project-backend/pkg/week"

	"github.com/go-playground/validator/v10"
)

// validateInput runs struct validation and reports failures as a 400 with readable messages.
func validateInput(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return apperror.Invalid(strings.Join(validation.FormatValidationErrors(err), "; "), err)
	}
	return nil
}

// repoError maps repository errors to API errors; notFound is the message for a missing row.
func repoError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(notFound)
	case errors.Is(err, domain.ErrConflict):
		return apperror.Conflict("El recurso ya existe")
	default:
		return apperror.Internal(err)
	}
}

func dateError(err error) error {
	if errors.Is(err, week.ErrInvalidDate) {
		return apperror.Invalid("Fecha inválida, usa el formato YYYY-MM-DD", err)
	}
	return apperror.Internal(err)
}

func tagError(err error) error {
	if errors.Is(err, matching.ErrInvalidTagInput) {
		return apperror.Invalid("Etiquetas inválidas", err)
	}
	return apperror.Internal(err)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return optionalString(*s)
}
