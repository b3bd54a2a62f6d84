package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/randorium/randorium-go/internal/crypto"
	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repository.NewDB(repository.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"empty email", model.RegisterRequest{Password: "password123"}, ErrEmailRequired},
		{"blank email", model.RegisterRequest{Email: "   ", Password: "password123"}, ErrEmailRequired},
		{"invalid email", model.RegisterRequest{Email: "nobody", Password: "password123"}, ErrInvalidEmail},
		{"empty password", model.RegisterRequest{Email: "test@example.com"}, ErrPasswordRequired},
		{"short password", model.RegisterRequest{Email: "test@example.com", Password: "short"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(newTestDB(t)), "test-secret", time.Hour)
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.RegisterRequest{Email: " Ada@Example.com ", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if reg.User.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", reg.User.Email)
	}

	claims, err := crypto.ValidateToken(reg.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != reg.User.ID {
		t.Errorf("token user %d, want %d", claims.UserID, reg.User.ID)
	}

	if _, err := svc.Register(ctx, model.RegisterRequest{Email: "ada@example.com", Password: "another one"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	login, err := svc.Login(ctx, model.LoginRequest{Email: "ADA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user %d, want %d", login.User.ID, reg.User.ID)
	}

	if _, err := svc.Login(ctx, model.LoginRequest{Email: "ada@example.com", Password: "wrong horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, model.LoginRequest{Email: "bob@example.com", Password: "whatever1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	me, err := svc.GetUser(ctx, reg.User.ID)
	if err != nil {
		t.Fatalf("GetUser() unexpected error: %v", err)
	}
	if me.Email != "ada@example.com" {
		t.Errorf("GetUser() email = %q", me.Email)
	}
}
