package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 digests of request bodies.
// It keeps a pool of hashers so concurrent requests do not allocate a new
// HMAC per call. A Signer with an empty key is disabled.
type Signer struct {
	key  []byte
	pool sync.Pool
}

// NewSigner returns a Signer for hashKey.
//
// Example usage:
//
//	s := utils.NewSigner("my-secret-key")
//	req.SetHeader(utils.HashHeader, s.Sign(body))
func NewSigner(hashKey string) *Signer {
	s := &Signer{key: []byte(hashKey)}
	s.pool.New = func() any {
		return hmac.New(sha256.New, s.key)
	}
	return s
}

// Enabled reports whether a key is configured.
func (s *Signer) Enabled() bool {
	return s != nil && len(s.key) > 0
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 digest of data.
func (s *Signer) Sign(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex digest of data.
func (s *Signer) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.Sum(data), expected)
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. It does not use a pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
