package workers

import (
	"context"
	"time"

	"github.com/enzg/one-big-key-sub004/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// SyncWorker drives the periodic full-sync job. Run returns immediately; the
// loop itself lives in the job until Stop.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, interval: interval}
}

func (w *SyncWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

func (w *SyncWorker) Stop() {
	w.job.Stop()
}
