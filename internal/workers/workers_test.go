// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/mock"
	"github.com/MKhiriev/secrets-api/internal/store"
)

// orderWorker appends its id to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_Run_Order(t *testing.T) {
	var order []int
	ws := &Workers{workers: []Worker{
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	}}

	ws.Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	storages := &store.Storages{}

	disabled := NewWorkers(storages, config.Workers{}, logger.Nop())
	assert.Empty(t, disabled.workers)

	enabled := NewWorkers(storages, config.Workers{SessionPurgeInterval: time.Minute}, logger.Nop())
	require.Len(t, enabled.workers, 1)
	assert.IsType(t, &SessionPurgeWorker{}, enabled.workers[0])
}

func TestSessionPurgeWorker_Purge(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := NewSessionPurgeWorker(storage, time.Minute, logger.Nop())
	w.now = func() time.Time { return fixed }

	storage.EXPECT().DeleteExpiredSessions(gomock.Any(), fixed).Return(int64(2), nil)
	w.purge(context.Background())

	storage.EXPECT().DeleteExpiredSessions(gomock.Any(), fixed).Return(int64(0), errors.New("db down"))
	assert.NotPanics(t, func() { w.purge(context.Background()) })
}

func TestSessionPurgeWorker_RunsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)

	purged := make(chan struct{}, 1)
	storage.EXPECT().
		DeleteExpiredSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case purged <- struct{}{}:
			default:
			}
			return 1, nil
		}).
		MinTimes(1)

	w := NewSessionPurgeWorker(storage, 5*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	select {
	case <-purged:
	case <-time.After(5 * time.Second):
		t.Fatal("purge never ran")
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
