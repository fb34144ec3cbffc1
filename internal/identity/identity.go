// Package identity carries the resolved user of a single request through context.Context.
package identity

import (
	"context"

	"expense_tracker/internal/models"
)

type userContextKey struct{}

// WithUser returns a copy of ctx carrying u. The stored value is a copy, so later
// changes to the caller's User do not leak into the request.
func WithUser(ctx context.Context, u models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userContextKey{}, u)
}

// UserFromContext returns the user installed by WithUser, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	if ctx == nil {
		return models.User{}, false
	}
	u, ok := ctx.Value(userContextKey{}).(models.User)
	if !ok || u.ID == 0 {
		return models.User{}, false
	}
	return u, true
}
