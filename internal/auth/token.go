package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const tokenEntropyBytes = 32

// GenerateToken returns a new opaque session token: 32 cryptographically
// random bytes, hex encoded. The raw token is handed to the client once and
// never persisted.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken is the storage form of a session token. Lookups always go
// through this digest, so a database dump cannot yield usable credentials.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
