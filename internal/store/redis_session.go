// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/models"
)

const sessionKeyPrefix = "session"

// redisSessionStorage keeps one string key per session. Keys carry the
// session expiry as their TTL, so Redis drops expired sessions on its own.
type redisSessionStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionStorage constructs a Redis-backed [SessionStorage].
func NewRedisSessionStorage(client *redis.Client, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		client: client,
		logger: logger,
	}
}

func (s *redisSessionStorage) key(tokenHash string) string {
	return sessionKeyPrefix + ":" + tokenHash
}

func (s *redisSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		// keep already expired records for the shortest TTL Redis accepts
		ttl = max(time.Until(session.ExpiresAt), time.Millisecond)
	}

	if err = s.client.Set(ctx, s.key(session.TokenHash), encoded, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *redisSessionStorage) FindSession(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	encoded, err := s.client.Get(ctx, s.key(tokenHash)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "*redisSessionStorage.FindSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal(encoded, &session); err != nil {
		log.Err(err).Str("func", "*redisSessionStorage.FindSession").Msg("error decoding session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	session.TokenHash = tokenHash

	return session, nil
}

func (s *redisSessionStorage) DeleteSession(ctx context.Context, tokenHash string) error {
	if err := s.client.Del(ctx, s.key(tokenHash)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// DeleteExpiredSessions is a no-op: expired keys are evicted by Redis.
func (s *redisSessionStorage) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}
