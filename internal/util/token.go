package util

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionTokenBytes = 32

// NewSessionToken returns an opaque, URL-safe bearer token with 32 bytes of
// entropy. Uniqueness is additionally enforced by the sessions table.
func NewSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
