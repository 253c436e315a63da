// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
)

const (
	pingRetries     = 3
	pingBaseBackoff = time.Second
)

// NewConnectPostgres opens a pgx-backed connection pool and pings it.
// Transient connection failures are retried with exponential backoff.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database
	if err = pingWithRetry(ctx, conn, classifier, log); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(pingRetries, retry.NewExponential(pingBaseBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}
		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "pingWithRetry").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
