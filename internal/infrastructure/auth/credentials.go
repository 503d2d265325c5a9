package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks the single configured admin credential. When a
// bcrypt hash is configured it takes precedence; otherwise the plaintext
// password is compared in constant time.
type CredentialVerifier struct {
	username     string
	password     string
	passwordHash string
}

func NewCredentialVerifier(username, password, passwordHash string) *CredentialVerifier {
	return &CredentialVerifier{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

// Verify returns a generic error regardless of which check failed, so
// callers cannot distinguish a wrong username from a wrong password.
func (v *CredentialVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passOK bool
	if v.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}

	if !userOK || !passOK {
		return fmt.Errorf("credential verification failed")
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the password_hash config
// field.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}
