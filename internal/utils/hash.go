package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no stored hash exists, so that a
// lookup miss costs the same as a wrong secret.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-credential"), bcrypt.DefaultCost)

// HashSecret returns the bcrypt hash of secret at the given cost.
//
// Example usage:
//
//	hash, err := utils.HashSecret("1234", 10)
func HashSecret(secret string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(h), nil
}

// CheckSecret reports whether secret matches hash. An empty hash never
// matches, but still spends one bcrypt comparison.
func CheckSecret(hash, secret string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// IsSecretHash reports whether s looks like a bcrypt hash.
func IsSecretHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
