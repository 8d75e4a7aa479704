// Package auth resolves bearer tokens to users and gates procedures on them.
package auth

import (
	"context"

	"github.com/planetdemo/planetdemo/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// userContextKey is the context key for storing the resolved User.
	userContextKey contextKey = "auth_user"
)

// ContextWithUser adds the resolved user to the context.
func ContextWithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext retrieves the resolved user from the context.
// The bool is false if no gate resolved a user for this request.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}

// MustUserFromContext retrieves the resolved user from the context.
// Panics if not present (use only in procedures behind the auth gate).
func MustUserFromContext(ctx context.Context) model.User {
	user, ok := UserFromContext(ctx)
	if !ok {
		panic("auth user not found - ensure the auth gate is applied")
	}
	return user
}
