// Package auth provides password hashing and verification.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt digest from a raw password.
func HashPassword(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether raw matches the stored digest. A malformed
// or empty digest verifies as false rather than surfacing an error; callers
// treat a failed verification as an absent result, not a fault.
func VerifyPassword(digest, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
