package domain

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPIN returns the hex-encoded SHA-256 digest under which a signing PIN
// is stored.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN compares a supplied PIN against a stored digest. Comparing the
// fixed-length digests keeps the check constant-time regardless of how much
// of the PIN matches.
func VerifyPIN(digest, pin string) bool {
	sum := sha256.Sum256([]byte(pin))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) == 1
}
