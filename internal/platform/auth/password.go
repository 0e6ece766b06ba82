package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of a plaintext password. New
// credentials are always stored hashed, never plaintext.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the candidate matches the stored bcrypt
// hash. Comparison is constant-time inside bcrypt. Stored values that are
// not bcrypt hashes (legacy plaintext rows) never verify; they must be
// migrated with `clinic-server users hash-legacy` first.
func VerifyPassword(stored, candidate string) bool {
	if !IsHashed(stored) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// IsHashed reports whether a stored credential is a bcrypt hash. Legacy rows
// created before hashing was enforced hold raw plaintext instead.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
