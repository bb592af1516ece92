package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/model"
)

// MinPasswordLength is the minimum plaintext length accepted before hashing.
const MinPasswordLength = 6

const bcryptCost = 12

// HashPassword transforms a plaintext password into a salted bcrypt hash.
// It is the single place passwords get hashed; callers must invoke it exactly
// once, when the password field is set or changed, never on unrelated saves.
func HashPassword(plain string) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", model.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword recomputes the hash using the salt embedded in storedHash
// and compares in constant time. A non-matching password returns (false, nil);
// a stored hash that is not a bcrypt string returns model.ErrMalformedHash.
func VerifyPassword(plain string, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, model.ErrMalformedHash
}
