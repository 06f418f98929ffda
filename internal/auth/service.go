package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid password")

// RoleAdmin is the only role the catering engine knows about:
// catalog writes are admin-gated, everything else is public.
const RoleAdmin = "ADMIN"

// Service checks the single admin password against its bcrypt
// hash (supplied from env at startup) and issues tokens.
type Service struct {
	passwordHash string
}

func NewService(passwordHash string) *Service {
	return &Service{passwordHash: passwordHash}
}

// Login returns a signed admin token for the right password.
func (s *Service) Login(password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.passwordHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken("admin", RoleAdmin)
}
