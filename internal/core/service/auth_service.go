package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/speech4j/security-service/internal/auth"
	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

// AuthService implements registration and login on top of the user service
// and the token codec.
type AuthService struct {
	users ports.UserService
	codec *auth.TokenCodec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserService, codec *auth.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Login verifies the presented credentials and mints a token for the user id.
// Unknown username and wrong password take the same exit: the caller sees
// domain.ErrInvalidCredentials either way, so responses cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindWithAuthorities(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("username", username).Msg("login for unknown user")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.PasswordMatches(password, user.PasswordHash) {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		s.log.Error().Err(err).Str("id", user.ID).Msg("token issuance failed")
		return "", domain.ErrDataOperation
	}

	s.log.Info().Str("id", user.ID).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) Register(ctx context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	return s.users.Create(ctx, in)
}
