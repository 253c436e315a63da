// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the signed session envelope handed to clients.
//
// It embeds [jwt.RegisteredClaims] for standard claim access. The "jti" claim
// carries the random session identifier and "sub" the owning user ID.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be placed into a cookie or an
// Authorization header.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// SessionID returns the session identifier carried in the "jti" claim.
func (t *Token) SessionID() (string, error) {
	if t.ID == "" {
		return "", errors.New("token has no session id")
	}
	return t.ID, nil
}

// UserID returns the owner identifier carried in the "sub" claim.
func (t *Token) UserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
