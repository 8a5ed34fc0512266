// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the coarse state of the sync orchestrator.
type SyncState string

const (
	SyncIdle    SyncState = "idle"
	SyncSyncing SyncState = "syncing"
	SyncOffline SyncState = "offline"
	SyncError   SyncState = "error"
)

// SyncStatus is a snapshot of the orchestrator state. Reason is set only in
// the SyncError state.
type SyncStatus struct {
	State      SyncState
	Reason     string
	LastSyncAt time.Time
}

// Resolution is the verdict of the conflict resolver for one item present
// both locally and remotely.
type Resolution int

const (
	KeepLocal Resolution = iota
	UseRemote
	Merge
)

func (r Resolution) String() string {
	switch r {
	case KeepLocal:
		return "keep_local"
	case UseRemote:
		return "use_remote"
	case Merge:
		return "merge"
	default:
		return "unknown"
	}
}

// ReconcileReport summarises what a reconcile pass changed.
type ReconcileReport struct {
	Inserted int
	Updated  int
	Deleted  int
	Kept     int
}
