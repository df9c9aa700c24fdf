package ports

import "context"

// AuthService implements the login and registration flows.
type AuthService interface {
	// Login verifies the credentials and returns a signed token for the
	// user id. Every failure path returns domain.ErrInvalidCredentials so a
	// caller cannot tell a missing account from a wrong password.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, in CreateUserInput) (*UserView, error)
}
