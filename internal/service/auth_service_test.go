package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/farhanadi/bloomlog/internal/dto"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/pkg/apperror"
)

func newTestAuthService(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, "test-secret", time.Hour), repo
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, _ := newTestAuthService(t)

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Birthday:        "1990-04-01",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if !strings.Contains(res.Message, "alice") {
		t.Errorf("expected confirmation message to name the user, got %q", res.Message)
	}
	if res.Profile == nil {
		t.Fatal("expected profile to be provisioned with the account")
	}
	if res.Profile.AvatarPath != "default.jpeg" {
		t.Errorf("expected default avatar, got %q", res.Profile.AvatarPath)
	}
	if got := res.Profile.Birthday.Format("2006-01-02"); got != "1990-04-01" {
		t.Errorf("expected birthday 1990-04-01, got %s", got)
	}
	if res.User.PasswordHash != "" {
		t.Error("password hash leaked into register response")
	}
}

func TestRegisterWithoutBirthdayDefaults(t *testing.T) {
	svc, _ := newTestAuthService(t)

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Profile.Birthday.IsZero() {
		t.Error("expected birthday to default rather than stay zero")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	req := dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	req.Email = "other@example.com"
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict for duplicate username, got %v", err)
	}

	req.Username = "alice2"
	req.Email = "alice@example.com"
	_, err = svc.Register(context.Background(), req)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.AccessToken == "" {
		t.Error("expected a signed token")
	}
	if res.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", res.TokenType)
	}
	if res.User.PasswordHash != "" {
		t.Error("password hash leaked into login response")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "supersecret"})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
}
