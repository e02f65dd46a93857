package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDContextKey is the context key for the authenticated user ID.
const userIDContextKey contextKey = "user_id"

// ContextWithUserID binds the authenticated user ID to the context.
// The access-guard middleware is the only writer; the value is the sole
// source of truth for ownership filtering downstream.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext retrieves the authenticated user ID.
// Returns empty string if the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDContextKey).(string)
	return id
}

// MustUserIDFromContext retrieves the authenticated user ID.
// Panics if not present (use only behind the auth middleware).
func MustUserIDFromContext(ctx context.Context) string {
	id := UserIDFromContext(ctx)
	if id == "" {
		panic("user ID not found in context - ensure auth middleware is applied")
	}
	return id
}
