// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteState is the full authoritative snapshot returned by the remote.
// EncryptionSalt and EncryptionTest are nil until encryption has been set up
// for the account.
type RemoteState struct {
	EncryptionSalt *string           `json:"encryptionSalt,omitempty"`
	EncryptionTest *EncryptedPayload `json:"encryptionTest,omitempty"`
	Items          []Item            `json:"items"`
}

// UploadedFile is the remote acknowledgement of a stored blob.
type UploadedFile struct {
	ID      string `json:"id"`
	Size    int64  `json:"size"`
	BlobKey string `json:"blobKey"`
}

// EncryptionSetup is sent once per account to publish the salt and the
// key-verification payload.
type EncryptionSetup struct {
	EncryptionSalt string           `json:"encryptionSalt"`
	EncryptionTest EncryptedPayload `json:"encryptionTest"`
}
