// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/secrets-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	SessionStorage   SessionStorage
	SecretRepository SecretRepository
}

// NewStorages wires the repositories on top of db. Sessions go to Redis when
// redisClient is non-nil and to the "sessions" table otherwise.
func NewStorages(db *DB, redisClient *redis.Client, log *logger.Logger) *Storages {
	sessions := NewSessionRepository(db, log)
	if redisClient != nil {
		sessions = NewRedisSessionStorage(redisClient, log)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		SessionStorage:   sessions,
		SecretRepository: NewSecretRepository(db, log),
	}
}
