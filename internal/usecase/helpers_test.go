package usecase_test

import (
	"testing"
	"time"

	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/week"

	"github.com/stretchr/testify/require"
)

// Wednesday of ISO week 1 of 2025 (2024-12-30 .. 2025-01-05)
var fixedNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func newCalculator() *week.Calculator {
	return week.NewCalculator(time.UTC, func() time.Time { return fixedNow })
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}

func strPtr(s string) *string { return &s }
