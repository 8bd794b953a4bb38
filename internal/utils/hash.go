package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PseudonymLength is the number of hex characters kept from the SHA-256
// digest when deriving a pseudonymous id.
const PseudonymLength = 12

// Anonymize derives the pseudonymous id for a caller-supplied identifier.
//
// The result is the lowercase hex SHA-256 digest of raw truncated to
// [PseudonymLength] characters. The same input always yields the same
// token and the raw identifier cannot be recovered from it without a
// preimage search.
//
//	utils.Anonymize("student-42") // "a1b2c3d4e5f6"-style token
func Anonymize(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:PseudonymLength]
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// SecretsEqual compares two shared secrets in constant time. An empty
// expected secret never matches, so an unconfigured secret locks the
// protected operation instead of opening it.
func SecretsEqual(expected, provided string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
