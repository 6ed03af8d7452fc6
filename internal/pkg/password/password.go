package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	cost = 12 // bcrypt cost factor

	// MaxLength is the bcrypt input limit in bytes.
	MaxLength = 72
	MinLength = 8
)

var (
	ErrTooShort = errors.New("password is too short")
	ErrTooLong  = errors.New("password exceeds 72 bytes")
)

// Hash hashes password using bcrypt
func Hash(password string) (string, error) {
	switch {
	case len(password) < MinLength:
		return "", ErrTooShort
	case len(password) > MaxLength:
		return "", ErrTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Verify compares password with hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
