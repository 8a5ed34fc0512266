package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// ItemIDLength is the length of generated item ids.
const ItemIDLength = 12

// IDGenerator produces identifiers for items, mutations and attachments.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// ItemID returns a random 12-character id over the URL-safe base64 alphabet.
func (g *IDGenerator) ItemID() string {
	// 9 random bytes encode to exactly 12 characters without padding
	buf := make([]byte, ItemIDLength*3/4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}

	return base64.RawURLEncoding.EncodeToString(buf)
}

// MutationID returns a time-ordered UUIDv7 string.
func (g *IDGenerator) MutationID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
