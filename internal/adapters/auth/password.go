package auth

import (
	"golang.org/x/crypto/bcrypt"

	"fedoffice/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a PasswordVerifier backed by bcrypt. Operator
// password hashes are provisioned out of band, so only comparison is needed.
func NewBcryptVerifier() domain.PasswordVerifier {
	return &bcryptVerifier{}
}

func (v *bcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
