package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)

// UserIDFromContext reads the authenticated user id set by the auth middleware.
// Both gin's string keys (c.Set) and typed context keys are accepted.
func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, KeyUserID)
}

// RoleFromContext reads the authenticated user's role.
func RoleFromContext(ctx context.Context) string {
	return stringValue(ctx, KeyUserRole)
}

func stringValue(ctx context.Context, key CtxKey) string {
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(string(key)).(string); ok {
		return v
	}
	return ""
}
