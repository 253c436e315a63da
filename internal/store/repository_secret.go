// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/models"
)

type secretRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecretRepository constructs a read-only [SecretRepository].
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	logger.Debug().Msg("creating secret repository")
	return &secretRepository{
		db:     db,
		logger: logger,
	}
}

func (r *secretRepository) ListSecrets(ctx context.Context) ([]models.Secret, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listSecretsQuery()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("error selecting secrets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	secrets := make([]models.Secret, 0)
	for rows.Next() {
		var s models.Secret
		if err = rows.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedAt); err != nil {
			log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("error scanning secret")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		secrets = append(secrets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return secrets, nil
}
