// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/secrets-api/models"
)

// UserRepository persists user credentials. Email uniqueness is enforced by
// the underlying store.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// Returns ErrEmailAlreadyExists on a unique violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when no row matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// ListUsers returns every user ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// SessionStorage keeps server-side session records keyed by the SHA-256
// digest of the session identifier. Every method is a single atomic store
// operation.
type SessionStorage interface {
	// SaveSession stores a new session record.
	SaveSession(ctx context.Context, session models.Session) error
	// FindSession returns ErrSessionNotFound when no record matches.
	FindSession(ctx context.Context, tokenHash string) (models.Session, error)
	// DeleteSession removes a record. Deleting an absent record is not an error.
	DeleteSession(ctx context.Context, tokenHash string) error
	// DeleteExpiredSessions removes records expired at now and returns how
	// many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SecretRepository reads the seeded secrets.
type SecretRepository interface {
	// ListSecrets returns every secret ordered by creation time.
	ListSecrets(ctx context.Context) ([]models.Secret, error)
}
