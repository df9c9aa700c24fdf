package ports

import (
	"context"

	"github.com/speech4j/security-service/internal/core/domain"
)

// RoleService defines use-case operations on roles and role assignments.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int) (*domain.Role, error)
	Create(ctx context.Context, name string) (*domain.Role, error)
	// Update replaces only the name; the id always comes from the stored record.
	Update(ctx context.Context, id int, name string) (*domain.Role, error)
	Delete(ctx context.Context, id int) error

	FindByUserID(ctx context.Context, userID string) ([]domain.Role, error)
	AddRoleToUser(ctx context.Context, userID string, roleID int) (*domain.Role, error)
	RemoveRoleFromUser(ctx context.Context, userID string, roleID int) error
}
