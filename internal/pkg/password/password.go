// Package password wraps bcrypt for credential hashing. The cost factor is
// bcrypt's default and can be raised without invalidating stored digests:
// the cost is embedded in each digest and Verify honours it.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when Hash is given an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hash returns a salted one-way digest of plaintext. The salt is random per
// call, so two hashes of the same input differ.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Comparison time depends
// only on the digest's cost factor, and a malformed digest is a mismatch,
// never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
