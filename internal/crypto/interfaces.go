// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cipher engine: password-based key
// derivation and authenticated encryption of item text, attachment metadata
// and file contents. The server only ever sees the outputs of this package.
package crypto

import "github.com/MKhiriev/go-pad/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_engine_mock.go -package=mock

// CipherEngine is responsible for all client cryptography. It knows nothing
// about the network, the cache or the session.
//
// Scheme:
//
//	Salt = GenerateSalt()                       (once per account)
//	Key  = DeriveKey(password, Salt)            (every unlock)
//	Test = CreateTestPayload(Key)               (once per account)
//	ok   = VerifyKey(Key, Test)                 (every unlock, offline capable)
type CipherEngine interface {
	// GenerateSalt returns 32 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives the 256-bit item key from password and salt with
	// PBKDF2-HMAC-SHA256. The same inputs always yield the same key.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// EncryptText seals plaintext under key with a fresh nonce.
	EncryptText(plaintext string, key []byte) (models.EncryptedPayload, error)

	// DecryptText opens payload. Any failure is reported as ErrDecryptionFailed.
	DecryptText(payload models.EncryptedPayload, key []byte) (string, error)

	// EncryptBytes seals data into a single buffer: nonce ‖ ciphertext ‖ tag.
	EncryptBytes(data, key []byte) ([]byte, error)

	// DecryptBytes opens a buffer produced by EncryptBytes.
	DecryptBytes(blob, key []byte) ([]byte, error)

	// CreateTestPayload encrypts the fixed known plaintext used for
	// password verification.
	CreateTestPayload(key []byte) (models.EncryptedPayload, error)

	// VerifyKey reports whether key opens testPayload to the known plaintext.
	VerifyKey(key []byte, testPayload models.EncryptedPayload) bool
}
