package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestLen is the length of every identity returned by Digest.
const DigestLen = sha256.Size * 2

// Digest returns the lowercase hex SHA-256 of canonical.
// Callers are responsible for handing in an injective encoding.
func Digest(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
