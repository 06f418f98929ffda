package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service := NewService(testHash(t, "wings-and-sauce"))

	token, err := service.Login("wings-and-sauce")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if subject != "admin" || role != RoleAdmin {
		t.Errorf("expected admin/ADMIN claims, got %s/%s", subject, role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	service := NewService(testHash(t, "wings-and-sauce"))

	if _, err := service.Login("guessing"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmptyHash(t *testing.T) {
	service := NewService("")

	if _, err := service.Login("anything"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials with no hash configured, got %v", err)
	}
}
