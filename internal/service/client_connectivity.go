// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/logger"
)

const defaultProbeInterval = 10 * time.Second

type connectivityMonitor struct {
	remote   adapter.RemoteClient
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	reachable atomic.Bool
	probeMu   sync.Mutex
	changes   *broadcaster[bool]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityMonitor creates a monitor that pings remote every interval.
// The server counts as unreachable until the first probe succeeds.
func NewConnectivityMonitor(remote adapter.RemoteClient, interval time.Duration, logger *logger.Logger) ConnectivityMonitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &connectivityMonitor{
		remote:   remote,
		interval: interval,
		timeout:  interval,
		logger:   logger,
		changes:  newBroadcaster[bool](),
	}
}

func (m *connectivityMonitor) Reachable() bool {
	return m.reachable.Load()
}

func (m *connectivityMonitor) Subscribe() (<-chan bool, func()) {
	return m.changes.subscribe()
}

func (m *connectivityMonitor) Probe(ctx context.Context) bool {
	m.probeMu.Lock()
	defer m.probeMu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ok := m.remote.Ping(probeCtx) == nil
	if prev := m.reachable.Swap(ok); prev != ok {
		m.logger.Info().Bool("reachable", ok).Msg("server reachability changed")
		m.changes.publish(ok)
	}
	return ok
}

// Start implements ConnectivityMonitor. It stops a previous loop first.
func (m *connectivityMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		m.Probe(loopCtx)

		t := time.NewTicker(m.interval)
		defer t.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.Probe(loopCtx)
			}
		}
	}()
}

// Stop implements ConnectivityMonitor. Safe to call when not running.
func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
