package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a password before it is handed to the
// identity provider, so plain credentials never travel past the handler.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}
