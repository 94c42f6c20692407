package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hasher provides interface for credential digest operations
type Hasher interface {
	Hash(plaintext string) string
	Compare(digest, plaintext string) bool
}

type sha256Hasher struct{}

// NewSHA256Hasher creates a hasher producing hex-encoded SHA-256 digests.
// The digest is deterministic so stored values can be compared by equality.
func NewSHA256Hasher() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (h *sha256Hasher) Compare(digest, plaintext string) bool {
	computed := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(computed)) == 1
}
