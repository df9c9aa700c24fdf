package ports

import (
	"context"

	"github.com/speech4j/security-service/internal/core/domain"
)

// RoleRepository defines persistence operations for roles and the
// user-role join table.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int) (*domain.Role, error)
	Insert(ctx context.Context, name string) (*domain.Role, error)
	UpdateByID(ctx context.Context, id int, name string) error
	DeleteByID(ctx context.Context, id int) error

	// FindByUserID returns the roles attached to a user via the join table.
	FindByUserID(ctx context.Context, userID string) ([]domain.Role, error)
	// InsertUserRole attaches a role to a user. A duplicate pairing must be
	// reported as domain.ErrRoleExists.
	InsertUserRole(ctx context.Context, userID string, roleID int) error
	// DeleteUserRole detaches a role from a user. Removing an absent pairing
	// is not an error.
	DeleteUserRole(ctx context.Context, userID string, roleID int) error
}
