// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MutationKind enumerates the operations that can be queued for the remote.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationDelete MutationKind = "delete"
)

// PendingMutation is a queued create or delete awaiting transmission.
// Payload holds the JSON-serialized Item for creates and is empty for deletes.
type PendingMutation struct {
	ID         string       `json:"id"`
	Kind       MutationKind `json:"kind"`
	ItemID     string       `json:"itemId"`
	Payload    []byte       `json:"payload,omitempty"`
	CreatedAt  int64        `json:"createdAt"`
	RetryCount int          `json:"retryCount"`
}
