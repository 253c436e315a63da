// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SessionIDBytes is the entropy of a session identifier (64 hex chars).
const SessionIDBytes = 32

// GenerateSessionID returns a fresh random session identifier, hex-encoded.
func GenerateSessionID() (string, error) {
	b := make([]byte, SessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashSessionID returns the hex-encoded SHA-256 digest of a session
// identifier. Only this digest is persisted.
func HashSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}
