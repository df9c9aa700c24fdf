package ports

import (
	"context"

	"github.com/speech4j/security-service/internal/core/domain"
)

// UserView is the outward projection of a user. It deliberately has no field
// for the password hash, so the hash cannot leak through any response path.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserInput carries the fields legal at registration time.
type CreateUserInput struct {
	Email    string
	Username string // optional; defaults to Email when blank
	Password string // plaintext, hashed by the service before persisting
}

// UpdateUserInput carries the fields legal for an existing user. Email and ID
// are intentionally absent: they cannot be changed after creation.
type UpdateUserInput struct {
	Username string // optional; blank keeps the stored username
	Password string // required; re-hashed on every update
}

// UserService defines use-case operations on users.
type UserService interface {
	// List returns a page of users. Limit is clamped to [0, 10] and offset
	// to >= 0; out-of-range values are clamped silently, never rejected.
	List(ctx context.Context, limit, offset int) ([]UserView, error)
	GetByID(ctx context.Context, id string) (*UserView, error)
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	GetByUsername(ctx context.Context, username string) (*UserView, error)
	Create(ctx context.Context, in CreateUserInput) (*UserView, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*UserView, error)
	// Delete removes a user by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
	// FindWithAuthorities loads a user by username with Roles populated.
	// Used by the login flow to embed authority data at authentication time.
	FindWithAuthorities(ctx context.Context, username string) (*domain.User, error)
}
