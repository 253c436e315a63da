// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of an active sign-in.
//
// The plaintext session identifier travels only inside the client's token;
// the store keeps its SHA-256 digest in TokenHash so a leaked table cannot be
// replayed.
type Session struct {
	// TokenHash is the hex-encoded SHA-256 digest of the session identifier.
	TokenHash string `json:"-"`

	// UserID references the owner of the session.
	UserID string `json:"user_id"`

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment the session stops resolving.
	// The zero value means the session never expires.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpiredAt reports whether the session is expired at t.
// Sessions without an expiry never expire.
func (s Session) IsExpiredAt(t time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !t.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
