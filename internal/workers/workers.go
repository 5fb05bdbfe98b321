package workers

import (
	"context"
	"time"

	"github.com/gophervault/vaultsync/internal/service"
)

type Workers struct {
	workers []Worker
}

// New aggregates workers so the application can start and stop them as one
// unit.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse registration order and blocks until all
// have terminated.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// syncWorker adapts the periodic snapshot sync job to the Worker interface.
type syncWorker struct {
	job      service.SyncJob
	userID   string
	interval time.Duration
}

// NewSyncWorker wraps job as a [Worker] syncing for userID every interval.
func NewSyncWorker(job service.SyncJob, userID string, interval time.Duration) Worker {
	return &syncWorker{job: job, userID: userID, interval: interval}
}

func (s *syncWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.userID, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
}
