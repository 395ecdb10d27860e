// Package crypto implements credential hashing and verification.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SaltLen is the length in bytes of a freshly generated salt.
const SaltLen = 16

// NewSalt returns a cryptographically random salt, hex encoded.
func NewSalt() (string, error) {
	b := make([]byte, SaltLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashPassword returns the hex SHA-256 digest of salt||password.
// An empty salt yields the legacy unsalted digest, so rows created
// before salting was introduced still verify.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to the expected digest
// under the given salt. The comparison is constant time.
func VerifyPassword(password, salt, expected string) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
