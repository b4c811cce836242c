// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var userContextKey = contextKey{}

// WithUserID attaches the authenticated identity id to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID returns the authenticated identity id, or false when the
// request never went through the authentication middleware.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok
}
