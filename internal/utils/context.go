// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the service: typed context keys, ID generation,
// session token signing and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/secrets-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// userCtxKey is the key under which the authenticated user's safe view is
// stored in the request context.
var userCtxKey = contextKey("user")

// sessionTokenCtxKey is the key under which the raw session token of an
// authenticated request is stored.
var sessionTokenCtxKey = contextKey("sessionToken")

// WithUser returns a copy of ctx carrying the safe view of user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user.Safe())
}

// UserFromContext returns the authenticated user attached by WithUser.
//
// ok is false when the request is unauthenticated.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userCtxKey).(models.User)
	return user, ok
}

// WithSessionToken returns a copy of ctx carrying the raw session token the
// request was authenticated with.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenCtxKey, token)
}

// SessionTokenFromContext returns the token stored by WithSessionToken.
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenCtxKey).(string)
	return token, ok && token != ""
}
