// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/secrets-api/models"
)

// UserService registers users and checks their credentials. Every returned
// [models.User] is a safe view without the password hash.
type UserService interface {
	Create(ctx context.Context, credentials models.Credentials) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// SessionService issues, resolves and destroys sign-in sessions.
type SessionService interface {
	// CreateSession starts a session for userID and returns the token the
	// client presents on later requests.
	CreateSession(ctx context.Context, userID string) (models.Token, error)

	// ResolveSession returns the user bound to token. Unknown, malformed,
	// expired and destroyed tokens yield ok == false and a nil error; only
	// storage failures are reported as errors.
	ResolveSession(ctx context.Context, token string) (userID string, ok bool, err error)

	// DestroySession ends the session behind token. It is idempotent.
	DestroySession(ctx context.Context, token string) error
}

type SecretService interface {
	List(ctx context.Context) ([]models.Secret, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
