package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a token key; hex encoding doubles it to a
// 40-character opaque string.
const tokenBytes = 20

// NewTokenKey generates a random opaque bearer token key. The key carries
// no structure: clients and middleware treat it as an owned secret looked
// up in the store, never parsed.
func NewTokenKey() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
