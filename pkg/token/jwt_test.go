package token

import (
	"strings"
	"testing"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := NewJWTManager("test-secret", 1, 7)

	tok, err := m.GenerateToken("user-1", "ada@example.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := m.VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "ada@example.com" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-a", 1, 7)
	m2 := NewJWTManager("secret-b", 1, 7)

	tok, err := m1.GenerateToken("user-1", "ada@example.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := m2.VerifyToken(tok); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestNewIDFormat(t *testing.T) {
	id := NewID("app")
	if !strings.HasPrefix(id, "app-") {
		t.Fatalf("expected 'app-' prefix, got %q", id)
	}
	if len(id) <= len("app-") {
		t.Fatalf("expected a random suffix, got %q", id)
	}
	if NewID("app") == id {
		t.Fatal("expected distinct ids on successive calls")
	}
}
