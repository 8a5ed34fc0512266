// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pad/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of a freshly generated salt.
	SaltSize = 32
	// KeySize is the AES-256 key length produced by DeriveKey.
	KeySize = 32
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16

	// DefaultIterations is the PBKDF2 work factor for production use.
	DefaultIterations = 600_000

	testPlaintext = "pad-encryption-test"
)

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct {
	// iterations is kept in the struct so tests can use a cheap work factor.
	iterations int
	rand       io.Reader
}

// NewCipherEngine constructs a [CipherEngine] using PBKDF2-HMAC-SHA256 with
// [DefaultIterations] and AES-256-GCM.
func NewCipherEngine() CipherEngine {
	return &cipherEngine{iterations: DefaultIterations, rand: rand.Reader}
}

// NewCipherEngineWithIterations is like [NewCipherEngine] with a custom PBKDF2
// work factor. Keys derived with different factors are not compatible.
func NewCipherEngineWithIterations(iterations int) CipherEngine {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &cipherEngine{iterations: iterations, rand: rand.Reader}
}

// GenerateSalt implements [CipherEngine]. It reads [SaltSize] bytes from the
// OS CSPRNG.
func (c *cipherEngine) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return nil, fmt.Errorf("%w: read salt: %v", ErrKeyDerivation, err)
	}
	return salt, nil
}

// DeriveKey implements [CipherEngine]. It is CPU bound (hundreds of
// milliseconds at the default work factor) and must not be called while
// holding locks that guard observable state.
func (c *cipherEngine) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}
	return pbkdf2.Key([]byte(password), salt, c.iterations, KeySize, sha256.New), nil
}

// EncryptText implements [CipherEngine]. The GCM output is split so that the
// payload stores ciphertext‖tag and the nonce in separate base64 fields.
func (c *cipherEngine) EncryptText(plaintext string, key []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce, err := c.nonce()
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return models.EncryptedPayload{
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Version:    models.PayloadVersion,
	}, nil
}

// DecryptText implements [CipherEngine].
func (c *cipherEngine) DecryptText(payload models.EncryptedPayload, key []byte) (string, error) {
	if payload.Version != models.PayloadVersion {
		return "", fmt.Errorf("%w: unsupported payload version %d", ErrDecryptionFailed, payload.Version)
	}

	nonce, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil || len(nonce) != NonceSize {
		return "", fmt.Errorf("%w: malformed iv", ErrDecryptionFailed)
	}
	sealed, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	if err != nil || len(sealed) < TagSize {
		return "", fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// wrong key and tampered data look the same here
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// EncryptBytes implements [CipherEngine]. Output: nonce(12) ‖ ciphertext ‖ tag(16).
func (c *cipherEngine) EncryptBytes(data, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := c.nonce()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, NonceSize+len(data)+TagSize)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, data, nil), nil
}

// DecryptBytes implements [CipherEngine].
func (c *cipherEngine) DecryptBytes(blob, key []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryptionFailed)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, sealed := blob[:NonceSize], blob[NonceSize:]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plain, nil
}

// CreateTestPayload implements [CipherEngine].
func (c *cipherEngine) CreateTestPayload(key []byte) (models.EncryptedPayload, error) {
	return c.EncryptText(testPlaintext, key)
}

// VerifyKey implements [CipherEngine]. This is the only password check in the
// system; there is no separate password hash.
func (c *cipherEngine) VerifyKey(key []byte, testPayload models.EncryptedPayload) bool {
	plain, err := c.DecryptText(testPayload, key)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(testPlaintext)) == 1
}

func (c *cipherEngine) nonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %v", ErrEncryptionFailed, err)
	}
	return nonce, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
