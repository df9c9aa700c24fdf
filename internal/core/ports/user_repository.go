package ports

import (
	"context"

	"github.com/speech4j/security-service/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
// Implementations must translate uniqueness violations to domain.ErrUserExists
// and missing rows to domain.ErrUserNotFound so the service layer never sees
// raw driver errors.
type UserRepository interface {
	FindPage(ctx context.Context, limit, offset int) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	// UpdateByID writes only the mutable columns. ID and email are immutable
	// after creation and have no update path here.
	UpdateByID(ctx context.Context, id, username, passwordHash string) error
	DeleteByID(ctx context.Context, id string) error
}
