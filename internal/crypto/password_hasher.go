// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2SaltLen = 16 // bytes
	argon2KeyLen  = 32 // bytes

	maxArgon2Threads = 255
	maxArgon2Memory  = 1 << 21 // KiB, 2 GiB
	maxArgon2KeyLen  = 1 << 10
)

// argon2idHasher is the [PasswordHasher] backed by Argon2id.
//
// Digests use the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 key>
//
// The cost parameters are encoded in every digest, so digests produced with
// older parameters keep verifying after the defaults change.
type argon2idHasher struct {
	// Argon2id tuning parameters.
	time    uint32
	memory  uint32 // KiB
	threads uint8

	// rand is the salt source.
	rand io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewPasswordHasher() PasswordHasher {
	return newArgon2idHasher(1, 64*1024, 4)
}

func newArgon2idHasher(time, memory uint32, threads uint8) *argon2idHasher {
	return &argon2idHasher{
		time:    time,
		memory:  memory,
		threads: threads,
		rand:    rand.Reader,
	}
}

// Hash implements [PasswordHasher].
func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, argon2KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2idHasher) Verify(plaintext, digest string) bool {
	params, salt, expected, ok := decodeDigest(digest)
	if !ok {
		return false
	}

	computed := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1
}

type argon2Params struct {
	time    uint32
	memory  uint32
	threads uint8
}

// decodeDigest parses a PHC-encoded Argon2id digest. Any deviation from the
// expected layout, version or parameter bounds yields ok == false.
func decodeDigest(digest string) (params argon2Params, salt, key []byte, ok bool) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, false
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return params, nil, nil, false
	}
	if time == 0 || threads == 0 || threads > maxArgon2Threads || memory < 8*threads || memory > maxArgon2Memory {
		return params, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLen {
		return params, nil, nil, false
	}

	params = argon2Params{time: time, memory: memory, threads: uint8(threads)}
	return params, salt, key, true
}
