package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AdminPasswordCost is the bcrypt cost of hashes produced by HashAdminPassword.
const AdminPasswordCost = 12

// HashAdminPassword produces a value for ADMIN_PASSWORD_HASH.
func HashAdminPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("admin password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), AdminPasswordCost)
	return string(hash), err
}

// CheckAdminPassword reports whether password matches the configured hash.
// A hash bcrypt cannot read is returned as an error, not as a mismatch.
func CheckAdminPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("unusable admin password hash: %w", err)
	}
}
