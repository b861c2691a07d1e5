package service

import (
	"context"
	"testing"

	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/pkg/token"
)

func testJWTManager() *token.JWTManager {
	return token.NewJWTManager("test-secret", 1, 1)
}

func TestLoginEstablishesSession(t *testing.T) {
	kv := newMemKV()
	s := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	ctx := context.Background()

	if s.IsAuthenticated() {
		t.Fatal("expected unauthenticated start")
	}

	user, access, refresh, err := s.Login(ctx, "ada@example.com", "whatever", model.RoleStudent)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty tokens")
	}
	// 用户名缺省取邮箱的本地部分
	if user.Name != "ada" {
		t.Fatalf("expected synthesized name 'ada', got %q", user.Name)
	}
	if user.Role != model.RoleStudent || user.Employer != nil {
		t.Fatalf("student must not carry employer profile: %+v", user)
	}
	if !s.IsAuthenticated() || s.CurrentUser() == nil {
		t.Fatal("expected authenticated session after login")
	}
}

func TestRegisterEmployerDefaults(t *testing.T) {
	s := NewAccountService(repository.NewSessionRepository(newMemKV()), testJWTManager(), 0)
	ctx := context.Background()

	user, _, _, err := s.Register(ctx, RegisterInput{Email: "boss@corp.com", Name: "Boss"}, model.RoleEmployer)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Employer == nil {
		t.Fatal("employer must carry an employer profile")
	}
	if user.Employer.Company == "" {
		t.Fatal("expected a defaulted company name")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	s1 := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	if _, _, _, err := s1.Login(ctx, "ada@example.com", "pw", model.RoleStudent); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	s2 := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	if !s2.IsAuthenticated() {
		t.Fatal("expected session restored after restart")
	}
	if got := s2.CurrentUser(); got == nil || got.Email != "ada@example.com" {
		t.Fatalf("expected restored user, got %+v", got)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	s := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	if _, _, _, err := s.Login(ctx, "ada@example.com", "pw", model.RoleStudent); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.IsAuthenticated() || s.CurrentUser() != nil {
		t.Fatal("expected cleared session after logout")
	}

	// 登出后的重启也必须是未登录状态
	s2 := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	if s2.IsAuthenticated() {
		t.Fatal("expected no session after logout and restart")
	}
}

func TestCorruptSessionRecordIsDiscarded(t *testing.T) {
	kv := newMemKV()
	if err := kv.Put(context.Background(), "session:current_user", []byte("{not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	s := NewAccountService(repository.NewSessionRepository(kv), testJWTManager(), 0)
	if s.IsAuthenticated() || s.CurrentUser() != nil {
		t.Fatal("expected unauthenticated start with corrupt session record")
	}
}
