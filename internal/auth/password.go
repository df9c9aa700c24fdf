package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of secret. Called only at
// user creation and password-change time; plaintext is never persisted.
func HashPassword(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasswordMatches compares a plaintext secret against a stored digest.
// bcrypt's comparison does not short-circuit on early mismatches.
func PasswordMatches(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
