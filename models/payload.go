// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PayloadVersion is the only EncryptedPayload version produced by this client.
// Records carrying any other version are rejected on decryption.
const PayloadVersion = 1

// EncryptedPayload is the wire and at-rest form of every secret text field.
// Ciphertext holds ciphertext‖tag, IV holds the 12-byte nonce; both are
// standard base64.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Version    int    `json:"version"`
}

// IsZero reports whether the payload carries no data at all.
func (p EncryptedPayload) IsZero() bool {
	return p.Ciphertext == "" && p.IV == "" && p.Version == 0
}
