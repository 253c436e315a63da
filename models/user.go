// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AdminEmail is the email that grants administrative rights. There is no
// persisted role column: a user is an admin if and only if its email equals
// this literal.
const AdminEmail = "admin"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique opaque identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Email is the unique login identifier. It is compared case-sensitively,
	// exactly as provided at registration.
	Email string `json:"email"`

	// PasswordHash is the encoded argon2id digest of the user's password.
	// It is never serialised and never leaves the store/service boundary.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// IsAdmin reports whether the user holds administrative rights.
func (u User) IsAdmin() bool {
	return u.Email == AdminEmail
}

// Safe returns a copy of the user with all credential material removed.
func (u User) Safe() User {
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair submitted on registration and sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
