package domain

import "errors"

// Repository sentinel errors; usecases translate them into apperror responses.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)
