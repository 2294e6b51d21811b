package util

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for every stored credential, registration and admin
// resets alike.
const bcryptCost = 12

// HashPassword derives the bcrypt hash that gets persisted; the plain
// text is discarded by the caller.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// A malformed hash is treated as a mismatch, not an error.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
