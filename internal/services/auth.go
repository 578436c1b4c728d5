package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fedoffice/internal/domain"
)

type authService struct {
	issuer            domain.TokenIssuer
	passwords         domain.PasswordVerifier
	adminEmail        string
	adminPasswordHash string
	tokenExpiry       time.Duration
}

// NewAuthService returns the back-office operator login service. A single
// operator identity comes from configuration; the password is stored as a
// bcrypt hash.
func NewAuthService(
	issuer domain.TokenIssuer,
	passwords domain.PasswordVerifier,
	adminEmail, adminPasswordHash string,
	tokenExpiry time.Duration,
) domain.AuthService {
	return &authService{
		issuer:            issuer,
		passwords:         passwords,
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
		tokenExpiry:       tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || email != s.adminEmail {
		return "", domain.ErrUnauthorized
	}
	if err := s.passwords.Compare(s.adminPasswordHash, password); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(email, email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
