// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/crypto"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
	"github.com/MKhiriev/secrets-api/internal/utils"
	"github.com/MKhiriev/secrets-api/models"
)

// sessionService keeps server-side session records and hands clients a
// signed envelope around the random session identifier.
//
// The signature lets forged tokens be rejected without a store lookup. The
// record is authoritative: a token whose record is gone never resolves, even
// if its signature is still valid.
type sessionService struct {
	sessionStorage store.SessionStorage

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// sessionDuration is the session lifetime; zero means no expiry.
	sessionDuration time.Duration

	generateID func() (string, error)
	now        func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] using the token settings
// from cfg.
func NewSessionService(sessionStorage store.SessionStorage, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionStorage:  sessionStorage,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		generateID:      crypto.GenerateSessionID,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	sessionID, err := s.generateID()
	if err != nil {
		log.Err(err).Msg("session id generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := s.now().UTC()
	session := models.Session{
		TokenHash: crypto.HashSessionID(sessionID),
		UserID:    userID,
		CreatedAt: now,
	}
	if s.sessionDuration > 0 {
		session.ExpiresAt = now.Add(s.sessionDuration)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, userID, sessionID, now, s.sessionDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("session token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = s.sessionStorage.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", userID).Msg("saving session failed")
		return models.Token{}, fmt.Errorf("saving session failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("session created")
	return token, nil
}

func (s *sessionService) ResolveSession(ctx context.Context, tokenString string) (string, bool, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return "", false, nil
	}

	token, err := utils.ParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer, true)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")
		return "", false, nil
	}
	// both claims are guaranteed by ParseSessionToken
	sessionID, _ := token.SessionID()
	userID, _ := token.UserID()

	tokenHash := crypto.HashSessionID(sessionID)
	session, err := s.sessionStorage.FindSession(ctx, tokenHash)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return "", false, nil
	case err != nil:
		log.Err(err).Msg("session lookup failed")
		return "", false, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != userID {
		log.Warn().Str("user_id", userID).Msg("session token subject does not match session owner")
		return "", false, nil
	}

	if session.IsExpiredAt(s.now()) {
		if err = s.sessionStorage.DeleteSession(ctx, tokenHash); err != nil {
			log.Warn().Err(err).Msg("removing expired session failed")
		}
		return "", false, nil
	}

	return session.UserID, true, nil
}

func (s *sessionService) DestroySession(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	// an expired envelope may still release its record
	token, err := utils.ParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer, false)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring sign-out with invalid token")
		return nil
	}
	sessionID, _ := token.SessionID()

	if err = s.sessionStorage.DeleteSession(ctx, crypto.HashSessionID(sessionID)); err != nil {
		log.Err(err).Msg("deleting session failed")
		return fmt.Errorf("deleting session failed: %w", err)
	}

	return nil
}
