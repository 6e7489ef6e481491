package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordSaltLength = 32
	passwordKeyLength  = 32
	passwordIterations = 100000
)

// HashPassword derives a storable form of the password: a random 32-byte
// salt and a PBKDF2-HMAC-SHA256 key, both hex encoded and concatenated.
// The first 64 hex characters are always the salt; this split is a persisted
// contract shared with every other consumer of the users table.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	salt := make([]byte, passwordSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, passwordIterations, passwordKeyLength, sha256.New)
	return hex.EncodeToString(salt) + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from the candidate password and compares
// it to the stored key in constant time. A malformed stored form verifies as
// false; it never surfaces an error to the caller.
func VerifyPassword(stored, candidate string) bool {
	if len(stored) != 2*(passwordSaltLength+passwordKeyLength) {
		return false
	}
	salt, err := hex.DecodeString(stored[:2*passwordSaltLength])
	if err != nil {
		return false
	}
	storedKey, err := hex.DecodeString(stored[2*passwordSaltLength:])
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(candidate), salt, passwordIterations, passwordKeyLength, sha256.New)
	return subtle.ConstantTimeCompare(key, storedKey) == 1
}
