package service

import (
	"context"
	"sync"
	"time"

	"github.com/enzg/one-big-key-sub004/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// clientSyncJob runs full sync cycles on a fixed interval until stopped.
type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewClientSyncJob(syncService ClientSyncService, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		logger:      log,
	}
}

// Start launches the periodic loop. Calling Start on a running job restarts
// it with the new interval.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.cancel = cancel
	j.done = done
	j.mu.Unlock()

	go j.run(runCtx, interval, done)
}

// Stop cancels the loop and waits for the current cycle to finish.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (j *clientSyncJob) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	j.logger.Info().Dur("interval", interval).Msg("periodic sync started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("periodic sync stopped")
			return
		case <-ticker.C:
			if err := j.syncService.FullSync(ctx); err != nil {
				j.logger.Warn().Err(err).Msg("periodic sync cycle failed")
			}
		}
	}
}
