// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON request and response helpers, the resty HTTP
// client, trace ids and JWT access tokens.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the id of
// the authenticated user.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by WithUserID. ok is false
// when no id was stored or the stored value is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
