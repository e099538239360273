package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// GenerateShareToken mints a 128-bit random token, hex-encoded, for
// public note shares. Tokens are opaque and unguessable.
func GenerateShareToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.New("failed to generate share token")
	}
	return hex.EncodeToString(buf), nil
}
