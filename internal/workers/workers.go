// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled workers from cfg.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.SessionPurgeInterval > 0 {
		ws.workers = append(ws.workers, NewSessionPurgeWorker(storages.SessionStorage, cfg.SessionPurgeInterval, logger))
	} else {
		logger.Info().Msg("session purge worker is disabled")
	}

	return ws
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
