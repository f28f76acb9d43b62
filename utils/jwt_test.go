package utils

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	userID := uuid.New()
	token, err := GenerateToken(userID, "admin@b2bpro.uz", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "admin@b2bpro.uz" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("unexpected role %q", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	token, err := GenerateToken(uuid.New(), "staff@b2bpro.uz", "staff")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	os.Setenv("JWT_SECRET", "a-different-secret")
	defer os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	if _, err := ValidateToken(token); err == nil {
		t.Error("expected signature error with a different secret")
	}
}
