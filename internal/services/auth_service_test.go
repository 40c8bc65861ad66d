package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/code-surya/nomad/internal/constants"
	apperrors "github.com/code-surya/nomad/internal/errors"
	repository "github.com/code-surya/nomad/internal/repositories"
)

func newTestAuthService(t *testing.T, secret string, ttl time.Duration) *AuthService {
	db := setupTestDB(t)
	// bcrypt cost 4 keeps the tests fast.
	return NewAuthService(repository.NewUserRepository(db, 5*time.Second), secret, ttl, 4)
}

func TestAuthService_SignupLoginRoundTrip(t *testing.T) {
	auth := newTestAuthService(t, "test-secret", time.Hour)
	ctx := context.Background()

	token, user, err := auth.Signup(ctx, "w@example.com", "hunter2", "worker")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Role != constants.RoleWorker {
		t.Errorf("expected role worker, got %s", user.Role)
	}
	if user.PasswordHash == "hunter2" {
		t.Error("password stored in plaintext")
	}

	principal, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("failed to verify freshly issued token: %v", err)
	}
	if principal.ID != user.ID || principal.Email != "w@example.com" || principal.Role != constants.RoleWorker {
		t.Errorf("principal does not match signed-up user: %+v", principal)
	}

	if _, _, err := auth.Signup(ctx, "w@example.com", "other", "creator"); !errors.Is(err, apperrors.ErrUserExists) {
		t.Errorf("expected duplicate-user error, got %v", err)
	}

	loginToken, loginUser, err := auth.Login(ctx, "w@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginUser.ID != user.ID {
		t.Errorf("login returned a different user: %s vs %s", loginUser.ID, user.ID)
	}
	if _, err := auth.VerifyToken(loginToken); err != nil {
		t.Errorf("login token failed verification: %v", err)
	}
}

func TestAuthService_BadCredentials(t *testing.T) {
	auth := newTestAuthService(t, "test-secret", time.Hour)
	ctx := context.Background()

	if _, _, err := auth.Signup(ctx, "c@example.com", "pw", "manager"); apperrors.StatusCode(err) != 400 {
		t.Errorf("expected 400 for unknown role, got %v", err)
	}

	if _, _, err := auth.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown email, got %v", err)
	}

	if _, _, err := auth.Signup(ctx, "c@example.com", "rightpw", "creator"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, _, err := auth.Login(ctx, "c@example.com", "wrongpw"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for wrong password, got %v", err)
	}
}

func TestAuthService_TokenValidation(t *testing.T) {
	auth := newTestAuthService(t, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := auth.VerifyToken("not-a-token"); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected invalid-token error for garbage, got %v", err)
	}

	token, _, err := auth.Signup(ctx, "w@example.com", "pw", "worker")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	otherAuth := newTestAuthService(t, "different-secret", time.Hour)
	if _, err := otherAuth.VerifyToken(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected invalid-token error for wrong secret, got %v", err)
	}
}

func TestAuthService_ExpiredToken(t *testing.T) {
	auth := newTestAuthService(t, "test-secret", time.Nanosecond)
	ctx := context.Background()

	token, _, err := auth.Signup(ctx, "w@example.com", "pw", "worker")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := auth.VerifyToken(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("expected invalid-token error for expired token, got %v", err)
	}
}
