// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Cryptographic failures. Each is terminal for the single operation that
// produced it and callers must treat all of them like "wrong password or
// tampered data".
var (
	// ErrKeyDerivation is returned when a key cannot be derived, e.g. the
	// salt is empty.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when the supplied key is not 32 bytes long.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrEncryptionFailed is returned when sealing fails, usually because the
	// random source could not be read.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed covers malformed base64, a wrong nonce length, an
	// unknown payload version and authentication tag mismatch alike.
	ErrDecryptionFailed = errors.New("decryption failed")
)
