// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the service's credential primitives: the password
// hasher and the session identifier generator.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way digests and
// checks plaintexts against them.
type PasswordHasher interface {
	// Hash returns an encoded digest of plaintext. A fresh random salt is
	// drawn on every call, so hashing the same input twice yields two
	// different digests that both verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether digest was produced from plaintext by Hash.
	// A malformed digest is reported as a mismatch.
	Verify(plaintext, digest string) bool
}
