package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GenerateAPIKey creates a random service API key and its bcrypt hash.
// Only the hash is meant to be stored; the plain key is shown once.
func GenerateAPIKey() (plainKey string, hash string, err error) {
	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random key: %w", err)
	}
	plainKey = base64.RawURLEncoding.EncodeToString(keyBytes)

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainKey), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return plainKey, string(hashed), nil
}

// MatchAPIKey reports whether key matches any of the stored bcrypt hashes
func MatchAPIKey(hashes []string, key string) bool {
	for _, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			return true
		}
	}
	return false
}
