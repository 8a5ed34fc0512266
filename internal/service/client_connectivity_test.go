// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pad/internal/adapter"
	"github.com/MKhiriev/go-pad/internal/logger"
	"github.com/MKhiriev/go-pad/internal/mock"
)

func TestConnectivityMonitor_Probe_PublishesTransitionsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteClient(ctrl)
	gomock.InOrder(
		remote.EXPECT().Ping(gomock.Any()).Return(nil),
		remote.EXPECT().Ping(gomock.Any()).Return(nil),
		remote.EXPECT().Ping(gomock.Any()).Return(adapter.ErrNetwork),
	)

	m := NewConnectivityMonitor(remote, time.Second, logger.Nop())
	ch, cancel := m.Subscribe()
	defer cancel()
	ctx := context.Background()

	assert.False(t, m.Reachable())

	assert.True(t, m.Probe(ctx))
	assert.True(t, <-ch)

	assert.True(t, m.Probe(ctx))
	select {
	case v := <-ch:
		t.Fatalf("unexpected transition %v", v)
	default:
	}

	assert.False(t, m.Probe(ctx))
	assert.False(t, <-ch)
	assert.False(t, m.Reachable())
}

func TestConnectivityMonitor_Start_ProbesImmediatelyAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteClient(ctrl)
	remote.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)

	m := NewConnectivityMonitor(remote, 10*time.Millisecond, logger.Nop())
	m.Start(context.Background())

	assert.Eventually(t, m.Reachable, time.Second, 5*time.Millisecond)
	m.Stop()
	assert.NotPanics(t, m.Stop)
}

func TestBroadcaster_LatestWins(t *testing.T) {
	b := newBroadcaster[int]()
	ch, cancel := b.subscribe()

	b.publish(1)
	b.publish(2)
	b.publish(3)
	assert.Equal(t, 3, <-ch)

	cancel()
	_, ok := <-ch
	assert.False(t, ok)
	assert.NotPanics(t, cancel)
	assert.NotPanics(t, func() { b.publish(4) })
}

func TestBroadcaster_CloseAll(t *testing.T) {
	b := newBroadcaster[string]()
	ch1, cancel1 := b.subscribe()
	ch2, _ := b.subscribe()

	b.closeAll()
	_, ok1 := <-ch1
	_, ok2 := <-ch2
	assert.False(t, ok1)
	assert.False(t, ok2)
	assert.NotPanics(t, cancel1)
}
