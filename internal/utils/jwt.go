// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secrets-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates an HMAC-SHA256 signed session envelope.
//
// The token carries the following standard claims:
//   - Issuer    (iss): the service that issued the token
//   - Subject   (sub): the owning user ID
//   - ID        (jti): the random session identifier
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt + duration, omitted when duration is zero
//
// issuer, userID, sessionID and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("secrets-api", userID, sessionID, time.Now(), 0, "secret")
func GenerateSessionToken(issuer, userID, sessionID string, issuedAt time.Time, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || sessionID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  userID,
		ID:       sessionID,
		IssuedAt: jwt.NewNumericDate(issuedAt),
	}
	if duration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed}, nil
}

// ParseSessionToken verifies the signature and issuer of a session token and
// returns its claims.
//
// When verifyExpiry is false, time-based claims (exp, nbf, iat) are not
// checked; the signature and issuer still are. Sign-out uses this so that an
// expired envelope can still release its server-side session.
func ParseSessionToken(tokenString, signKey, issuer string, verifyExpiry bool) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if !verifyExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	// WithoutClaimsValidation also skips the issuer check.
	if !verifyExpiry && parsed.Issuer != issuer {
		return models.Token{}, errors.New("token issuer mismatch")
	}

	if _, err := parsed.SessionID(); err != nil {
		return models.Token{}, err
	}
	if _, err := parsed.UserID(); err != nil {
		return models.Token{}, err
	}

	return *parsed, nil
}
