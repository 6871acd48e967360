package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor used for all stored
// credentials. Cost 10 puts a single hash in the tens-of-milliseconds
// range on commodity hardware.
const passwordHashCost = 10

// HashPassword hashes a plaintext password with bcrypt.
//
// bcrypt embeds a random salt in every hash, so hashing the same
// password twice yields two different strings; both verify successfully.
//
// Returns an error only if bcrypt itself fails (e.g. the plaintext
// exceeds bcrypt's 72-byte input limit). Such a failure is terminal for
// the request: callers surface it as a server error, never retry it.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the bcrypt hash.
//
// The comparison is performed by bcrypt itself and is safe against
// timing analysis. A malformed hash never panics or errors out of the
// function: every failure collapses to false.
func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
