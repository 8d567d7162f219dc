// Package secrets hashes and verifies account passwords with bcrypt.
package secrets

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "cineclub/pkg/domain-errors"
)

// Hash creates a bcrypt hash of the provided password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password must be at most 72 bytes")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext password against a bcrypt hash. A mismatch is
// reported as unauthorized.
func Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return fmt.Errorf("could not verify password: %w", err)
	}
	return nil
}

// dummyHash is compared against when the account does not exist so that
// unknown emails cost as much as wrong passwords.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cineclub-timing-equalizer"), bcrypt.DefaultCost)

// VerifyAbsent burns one bcrypt comparison and always fails.
func VerifyAbsent(password string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}
