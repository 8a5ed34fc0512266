// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileCacheEntry holds the downloaded ciphertext of one attachment.
// ID is the attachment id; the row lives as long as its owning item.
type FileCacheEntry struct {
	ID             string
	ItemID         string
	EncryptedBytes []byte
	DownloadedAt   int64
}
