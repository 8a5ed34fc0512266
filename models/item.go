// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is the authoritative (server) shape of a Pad entry.
// CreatedAt is the remote write time in epoch milliseconds.
type Item struct {
	ID            string           `json:"id"`
	EncryptedText EncryptedPayload `json:"encryptedText"`
	Files         []FileAttachment `json:"files"`
	CreatedAt     int64            `json:"createdAt"`
}

// FileAttachment describes one encrypted file attached to an item. Size is the
// ciphertext size in bytes; BlobKey locates the blob in remote storage.
type FileAttachment struct {
	ID            string           `json:"id"`
	EncryptedName EncryptedPayload `json:"encryptedName"`
	EncryptedType EncryptedPayload `json:"encryptedType"`
	Size          int64            `json:"size"`
	BlobKey       string           `json:"blobKey"`
}

// CachedItem is the local shape of an item kept by the cache store.
type CachedItem struct {
	Item

	// UpdatedAt is the local write time in epoch milliseconds.
	UpdatedAt int64 `json:"updatedAt"`
	// SyncedAt is the time the row was last confirmed by a pull, 0 if never.
	SyncedAt int64 `json:"syncedAt"`
	// IsPendingSync marks local mutations not yet acknowledged by the server.
	IsPendingSync bool `json:"isPendingSync"`
}

// DisplayItem is the decrypted projection of a CachedItem handed to
// presentation code. It never leaves process memory.
type DisplayItem struct {
	ID            string
	Text          string
	Files         []DisplayFile
	CreatedAt     int64
	IsPendingSync bool
}

// DisplayFile is the decrypted view of a FileAttachment.
type DisplayFile struct {
	ID      string
	Name    string
	Type    string
	Size    int64
	BlobKey string
}

// NewFile is a plaintext file supplied by the user for attachment.
type NewFile struct {
	Name string
	Type string
	Data []byte
}
