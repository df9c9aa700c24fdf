package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/speech4j/security-service/internal/auth"
	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

func newAuthService(t *testing.T) (*AuthService, *UserService, *auth.TokenCodec) {
	t.Helper()
	users := newUserService(newStubUserRepo(), newStubRoleRepo())
	codec := auth.NewTokenCodec("secret", time.Hour)
	return NewAuthService(users, codec, zerolog.Nop()), users, codec
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, codec := newAuthService(t)

	created, err := users.Create(context.Background(), ports.CreateUserInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	subject, err := codec.Claims(token)
	if err != nil {
		t.Fatalf("claims: %v", err)
	}
	if subject != created.ID {
		t.Fatalf("token subject %q, want user id %q", subject, created.ID)
	}
}

// Login failure must be uniform: a wrong password and an unknown username
// return the exact same error, so responses cannot enumerate accounts.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc, users, _ := newAuthService(t)

	if _, err := users.Create(context.Background(), ports.CreateUserInput{
		Email:    "bob@example.com",
		Password: "goodpass1",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "bob@example.com", "badpass99")
	_, unknownUser := svc.Login(context.Background(), "ghost@example.com", "whatever1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", wrongPass, unknownUser)
	}
}

func TestAuthService_Register_DelegatesToUserService(t *testing.T) {
	svc, users, _ := newAuthService(t)

	view, err := svc.Register(context.Background(), ports.CreateUserInput{
		Email:    "carol@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if view.Username != "carol@example.com" {
		t.Fatalf("expected defaulted username, got %q", view.Username)
	}

	if _, err := users.GetByID(context.Background(), view.ID); err != nil {
		t.Fatalf("registered user not retrievable: %v", err)
	}
}
