// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
	"github.com/MKhiriev/secrets-api/models"
)

type secretService struct {
	secretRepository store.SecretRepository
	logger           *logger.Logger
}

func NewSecretService(secretRepository store.SecretRepository, logger *logger.Logger) SecretService {
	return &secretService{
		secretRepository: secretRepository,
		logger:           logger,
	}
}

func (s *secretService) List(ctx context.Context) ([]models.Secret, error) {
	secrets, err := s.secretRepository.ListSecrets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing secrets failed")
		return nil, fmt.Errorf("listing secrets failed: %w", err)
	}
	return secrets, nil
}
