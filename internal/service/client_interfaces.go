// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pad/models"
)

// Reachability answers whether the server can currently be reached.
type Reachability interface {
	Reachable() bool
}

// ConnectivityMonitor probes the server periodically and publishes
// reachability transitions.
type ConnectivityMonitor interface {
	Reachability

	// Probe pings the server once, records the result and returns it.
	Probe(ctx context.Context) bool

	// Subscribe returns a channel receiving every reachability transition.
	// Only the latest value is kept for slow receivers. The returned func
	// unsubscribes.
	Subscribe() (<-chan bool, func())

	// Start launches the probe loop. It probes once immediately.
	Start(ctx context.Context)

	// Stop stops the probe loop and waits for it to exit.
	Stop()
}

// Syncer runs a full synchronization cycle.
type Syncer interface {
	Sync(ctx context.Context) error
}

// SyncOrchestrator drives the push/pull cycle between the local cache and
// the server.
type SyncOrchestrator interface {
	Syncer

	// SyncMetadataOnly runs push and pull but does not warm the file cache.
	SyncMetadataOnly(ctx context.Context) error

	// Status returns the current sync state.
	Status() models.SyncStatus

	// Subscribe returns a channel receiving status changes (latest wins).
	Subscribe() (<-chan models.SyncStatus, func())

	// DownloadFile returns the encrypted blob of an attachment, from the
	// file cache when present, otherwise from the server.
	DownloadFile(ctx context.Context, id, blobKey, itemID string, size int64) ([]byte, error)

	// DroppedMutations lists the mutations given up on since start.
	DroppedMutations() []models.PendingMutation
	// Exclusive runs fn once no sync cycle is in flight and keeps new cycles
	// out until fn returns.
	Exclusive(fn func() error) error
}

// SyncJob runs Sync in the background on a ticker and whenever the server
// becomes reachable again.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
}

// Session is the facade used by presentation code. It holds the item key
// and the decrypted projection of the cache.
type Session interface {
	Unlock(ctx context.Context, password string) (bool, error)
	SetupEncryption(ctx context.Context, password string) error
	Lock()
	IsUnlocked() bool

	AddItem(ctx context.Context, text string) (models.DisplayItem, error)
	AddItemWithFiles(ctx context.Context, text string, files []models.NewFile) (models.DisplayItem, error)
	DeleteItem(ctx context.Context, id string) error
	Refresh(ctx context.Context) error

	Items() []models.DisplayItem
	Subscribe() (<-chan []models.DisplayItem, func())

	DownloadFile(ctx context.Context, file models.DisplayFile, itemID string) ([]byte, error)
	UploadFile(ctx context.Context, file models.NewFile) (models.FileAttachment, error)

	SignOut(ctx context.Context) error
	Close()
}
