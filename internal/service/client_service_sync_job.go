// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pad/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncer   Syncer
	monitor  ConnectivityMonitor
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncer.Sync on a ticker and on
// every unreachable→reachable transition of monitor. If interval is zero or
// negative it defaults to 5 minutes. The job is idle until Start is called.
func NewClientSyncJob(syncer Syncer, monitor ConnectivityMonitor, interval time.Duration, logger *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &clientSyncJob{syncer: syncer, monitor: monitor, interval: interval, logger: logger}
}

// Start implements SyncJob. It stops any previously running job first. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	transitions, unsubscribe := j.monitor.Subscribe()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx, "tick")
			case reachable, ok := <-transitions:
				if !ok {
					transitions = nil
					continue
				}
				if reachable {
					j.runOnce(jobCtx, "reconnect")
				}
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context, trigger string) {
	err := j.syncer.Sync(ctx)
	switch {
	case err == nil:
		j.logger.Debug().Str("trigger", trigger).Msg("background sync done")
	case errors.Is(err, ErrOffline), errors.Is(err, context.Canceled):
		j.logger.Debug().Err(err).Str("trigger", trigger).Msg("background sync skipped")
	default:
		j.logger.Warn().Err(err).Str("trigger", trigger).Msg("background sync failed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
