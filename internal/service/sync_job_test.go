package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/internal/mock"
)

func TestSyncJob_RunsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	var calls atomic.Int32
	syncSvc.EXPECT().
		FullSync(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, string) error {
			calls.Add(1)
			return nil
		}).
		MinTimes(2)

	job := NewSyncJob(syncSvc, logger.Nop())
	job.Start(context.Background(), testUserID, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_StopHaltsSyncing(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	var calls atomic.Int32
	syncSvc.EXPECT().
		FullSync(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, string) error {
			calls.Add(1)
			return nil
		}).
		AnyTimes()

	job := NewSyncJob(syncSvc, logger.Nop())
	job.Start(context.Background(), testUserID, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	job.Stop()

	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no syncs after Stop")
}

func TestSyncJob_StopWithoutStartIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := NewSyncJob(mock.NewMockSyncService(ctrl), logger.Nop())

	job.Stop()
	job.Stop()
}

func TestSyncJob_RestartReplacesPreviousJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	var calls atomic.Int32
	syncSvc.EXPECT().
		FullSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			calls.Add(1)
			return nil
		}).
		AnyTimes()

	job := NewSyncJob(syncSvc, logger.Nop())
	job.Start(context.Background(), testUserID, 10*time.Millisecond)
	job.Start(context.Background(), testUserID, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	job.Stop()
}
