package app

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a salted bcrypt hash of the given password. The
// cost and salt are embedded in the output, so two calls with the same input
// produce different hashes and old hashes stay verifiable after a cost bump.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// VerifyPassword reports whether password matches the stored hash using a
// constant-time comparison. A malformed hash yields false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
