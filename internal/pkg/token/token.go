// Package token issues the opaque bearer tokens handed to invitees.
// A token is the sole access control for the public booking view, so it
// must come from a cryptographically strong source and carry at least
// 128 bits of entropy.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

const byteLength = 16 // 128 bits

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewInviteToken returns a fresh 32-character lowercase hex token.
func NewInviteToken() (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IsWellFormed reports whether s has the shape of an invite token.
// Lookup still decides validity; this only lets handlers reject junk
// before touching storage.
func IsWellFormed(s string) bool {
	return tokenPattern.MatchString(s)
}
