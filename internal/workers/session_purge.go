// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/store"
)

// SessionPurgeWorker periodically deletes expired session records. Expired
// sessions never resolve either way; the purge only keeps storage bounded.
type SessionPurgeWorker struct {
	storage  store.SessionStorage
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	done chan struct{}
}

func NewSessionPurgeWorker(storage store.SessionStorage, interval time.Duration, logger *logger.Logger) *SessionPurgeWorker {
	return &SessionPurgeWorker{
		storage:  storage,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run starts the purge loop. The first purge happens one interval after Run.
func (w *SessionPurgeWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

// Done is closed once the loop has stopped.
func (w *SessionPurgeWorker) Done() <-chan struct{} {
	return w.done
}

func (w *SessionPurgeWorker) loop(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session purge worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session purge worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *SessionPurgeWorker) purge(ctx context.Context) {
	deleted, err := w.storage.DeleteExpiredSessions(ctx, w.now().UTC())
	if err != nil {
		w.logger.Err(err).Msg("expired session purge failed")
		return
	}
	if deleted > 0 {
		w.logger.Debug().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}
