// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieSecure sets the Secure attribute on the session cookie.
	cookieSecure bool

	// requestTimeout bounds every request; zero disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieSecure:   cfg.CookieSecure,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
