package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

// AuthorityCache abstracts the Redis-backed cache of a user's role names.
// Join-table mutations invalidate the entry so the authorization overlay
// never acts on stale authorities for longer than a single in-flight request.
type AuthorityCache interface {
	Get(ctx context.Context, userID string) ([]string, bool)
	Set(ctx context.Context, userID string, names []string)
	Invalidate(ctx context.Context, userID string)
}

// RoleService owns role mutation and the user-role join table.
type RoleService struct {
	roles ports.RoleRepository
	cache AuthorityCache
	log   zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, cache AuthorityCache, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, cache: cache, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("role listing failed")
		return nil, domain.ErrDataOperation
	}
	return roles, nil
}

func (s *RoleService) GetByID(ctx context.Context, id int) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			s.log.Error().Int("id", id).Msg("role not found")
			return nil, fmt.Errorf("role by id %d: %w", id, domain.ErrRoleNotFound)
		}
		s.log.Error().Err(err).Int("id", id).Msg("role lookup failed")
		return nil, domain.ErrDataOperation
	}
	s.log.Debug().Int("id", id).Str("name", role.Name).Msg("got role")
	return role, nil
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	s.log.Debug().Str("name", name).Msg("creating role")
	role, err := s.roles.Insert(ctx, name)
	if err != nil {
		return nil, s.writeError(err, "role insert failed")
	}
	return role, nil
}

// Update replaces only the name. The id always comes from the stored record:
// the existence check happens first, and the write targets that record.
func (s *RoleService) Update(ctx context.Context, id int, name string) (*domain.Role, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("id", existing.ID).Str("name", name).Msg("updating role")
	if err := s.roles.UpdateByID(ctx, existing.ID, name); err != nil {
		return nil, s.writeError(err, "role update failed")
	}
	return &domain.Role{ID: existing.ID, Name: name}, nil
}

// Delete removes a role by id; an absent id is a no-op.
func (s *RoleService) Delete(ctx context.Context, id int) error {
	if err := s.roles.DeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("role delete failed")
		return domain.ErrDataOperation
	}
	return nil
}

func (s *RoleService) FindByUserID(ctx context.Context, userID string) ([]domain.Role, error) {
	roles, err := s.roles.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("role lookup by user failed")
		return nil, domain.ErrDataOperation
	}
	return roles, nil
}

// AddRoleToUser attaches a role to a user via the join table. Neither entity
// changes ownership; attaching an already-attached pairing maps to the
// standard duplicate taxonomy.
func (s *RoleService) AddRoleToUser(ctx context.Context, userID string, roleID int) (*domain.Role, error) {
	role, err := s.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if err := s.roles.InsertUserRole(ctx, userID, roleID); err != nil {
		return nil, s.writeError(err, "role assignment failed")
	}

	s.cache.Invalidate(ctx, userID)
	s.log.Debug().Str("user_id", userID).Int("role_id", roleID).Msg("role attached")
	return role, nil
}

// RemoveRoleFromUser detaches a role from a user. Detaching an absent pairing
// succeeds silently.
func (s *RoleService) RemoveRoleFromUser(ctx context.Context, userID string, roleID int) error {
	if err := s.roles.DeleteUserRole(ctx, userID, roleID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Int("role_id", roleID).Msg("role detach failed")
		return domain.ErrDataOperation
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}

func (s *RoleService) writeError(err error, msg string) error {
	if errors.Is(err, domain.ErrRoleExists) {
		s.log.Error().Msg("role already exists")
		return domain.ErrRoleExists
	}
	s.log.Error().Err(err).Msg(msg)
	return domain.ErrDataOperation
}
