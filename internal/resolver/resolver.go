// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver decides how a cached item and its remote counterpart are
// combined when a pulled snapshot is reconciled into the local cache.
//
// Only timestamps are compared. Text is never merged; attachment lists are
// unioned by id.
package resolver

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-pad/models"
)

// Resolver is stateless and safe for concurrent use.
type Resolver struct{}

// New returns a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve picks the winner between a cached item and the remote copy with the
// same id. Items without unsynced local changes always take the remote copy.
// A pending local item wins only when it was written after the remote copy
// was created; the win becomes Merge when both sides carry attachments.
func (r *Resolver) Resolve(local models.CachedItem, remote models.Item) models.Resolution {
	if !local.IsPendingSync {
		return models.UseRemote
	}

	if local.UpdatedAt <= remote.CreatedAt {
		return models.UseRemote
	}

	if len(local.Files) > 0 && len(remote.Files) > 0 {
		return models.Merge
	}

	return models.KeepLocal
}

// MergeFiles unions two attachment lists by id. The remote entry wins on an
// id collision. The result is ordered by id.
func (r *Resolver) MergeFiles(local, remote []models.FileAttachment) []models.FileAttachment {
	byID := make(map[string]models.FileAttachment, len(local)+len(remote))
	for _, f := range local {
		byID[f.ID] = f
	}
	for _, f := range remote {
		byID[f.ID] = f
	}

	merged := make([]models.FileAttachment, 0, len(byID))
	for _, f := range byID {
		merged = append(merged, f)
	}
	slices.SortFunc(merged, func(a, b models.FileAttachment) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return merged
}
