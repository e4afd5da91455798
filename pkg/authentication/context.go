// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the authenticated principal's
// verified email.
func WithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, principalContextKey, email)
}

// GetPrincipal retrieves the authenticated principal's email from the
// context. Returns an empty string and false if none is present.
func GetPrincipal(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(principalContextKey).(string)
	return email, ok
}
