package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt cost used for all stored credentials.
const hashCost = 10

// HashPassword produces a salted one-way digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
