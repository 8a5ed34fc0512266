// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pad/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCacheStore is the durable local cache: cached items, the FIFO queue of
// pending mutations and the encrypted file cache.
type LocalCacheStore interface {
	SaveItem(ctx context.Context, item models.CachedItem) error
	GetItem(ctx context.Context, id string) (models.CachedItem, error)
	// GetAllItems returns every cached item, newest first.
	GetAllItems(ctx context.Context) ([]models.CachedItem, error)
	// DeleteItem removes the item and its cached files in one transaction.
	DeleteItem(ctx context.Context, id string) error
	SetPendingSync(ctx context.Context, id string, pending bool) error

	Enqueue(ctx context.Context, mutation models.PendingMutation) error
	// PendingMutations returns the queue in FIFO order.
	PendingMutations(ctx context.Context) ([]models.PendingMutation, error)
	IncrementRetry(ctx context.Context, id string) (int, error)
	RemoveMutation(ctx context.Context, id string) error
	CountMutations(ctx context.Context) (int, error)

	GetFile(ctx context.Context, id string) (models.FileCacheEntry, error)
	PutFile(ctx context.Context, entry models.FileCacheEntry) error
	HasFile(ctx context.Context, id string) (bool, error)
	CachedFileIDs(ctx context.Context) ([]string, error)
	DeleteFilesForItem(ctx context.Context, itemID string) error

	// AddLocalItem writes a pending item and its create mutation atomically.
	AddLocalItem(ctx context.Context, item models.CachedItem, mutation models.PendingMutation) error
	// DeleteLocalItem deletes an item and enqueues its delete mutation atomically.
	DeleteLocalItem(ctx context.Context, id string, mutation models.PendingMutation) error
	// Reconcile merges an authoritative remote snapshot into the cache in a
	// single transaction.
	Reconcile(ctx context.Context, remote []models.Item, resolver ConflictResolver, now int64) (models.ReconcileReport, error)
	// Clear wipes all cached data.
	Clear(ctx context.Context) error
	Close() error
}

// ConflictResolver decides how a cached item and its remote counterpart are
// combined during Reconcile.
type ConflictResolver interface {
	Resolve(local models.CachedItem, remote models.Item) models.Resolution
	MergeFiles(local, remote []models.FileAttachment) []models.FileAttachment
}

// Well-known SecretStore keys.
const (
	SecretEncryptionSalt = "encryption_salt"
	SecretEncryptionTest = "encryption_test"
	SecretAuthToken      = "auth_token"
)

// SecretStore keeps small secrets in OS-backed secure storage.
type SecretStore interface {
	Save(key string, value []byte) error
	// Load returns ErrSecretNotFound when nothing is stored under key.
	Load(key string) ([]byte, error)
	// Delete is a no-op for missing keys.
	Delete(key string) error
	Exists(key string) (bool, error)
}
