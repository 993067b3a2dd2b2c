// Package password wraps bcrypt hashing behind package-level sentinels
// so callers never branch on bcrypt's own errors.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

// HashPassword derives a bcrypt hash at the library's default cost.
// Empty input is rejected here rather than hashed.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

// ComparePassword checks plain against hash. A mismatch surfaces as
// ErrComparisonFailed; anything else means the hash itself is bad.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return err
	}
}
