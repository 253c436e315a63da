// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/crypto"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
	"github.com/MKhiriev/secrets-api/internal/utils"
)

type Services struct {
	UserService    UserService
	SessionService SessionService
	SecretService  SecretService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, crypto.NewPasswordHasher(), utils.NewUUIDGenerator(), logger),
		SessionService: NewSessionService(storages.SessionStorage, cfg.App, logger),
		SecretService:  NewSecretService(storages.SecretRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
