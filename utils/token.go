package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 32

// GenerateToken returns a hex-encoded opaque token with 256 bits of
// CSPRNG entropy, used for both session and update tokens.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
