package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/speech4j/security-service/internal/auth"
	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

// MaxPageSize caps the number of users returned by a single List call.
const MaxPageSize = 10

// UserService owns the mutation path to user records; nothing else writes a user.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, log: log}
}

// List returns a page of user projections. Limit is clamped to [0, MaxPageSize]
// and offset to >= 0; callers supplying out-of-range values get the clamped
// page silently rather than an error.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]ports.UserView, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.FindPage(ctx, limit, offset)
	if err != nil {
		s.log.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("user page lookup failed")
		return nil, domain.ErrDataOperation
	}

	views := make([]ports.UserView, len(users))
	for i := range users {
		views[i] = toUserView(&users[i])
	}
	return views, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserView, error) {
	return s.findOne(ctx, "id", id, func(ctx context.Context) (*domain.User, error) {
		return s.users.FindByID(ctx, id)
	})
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*ports.UserView, error) {
	return s.findOne(ctx, "email", email, func(ctx context.Context) (*domain.User, error) {
		return s.users.FindByEmail(ctx, email)
	})
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*ports.UserView, error) {
	return s.findOne(ctx, "username", username, func(ctx context.Context) (*domain.User, error) {
		return s.users.FindByUsername(ctx, username)
	})
}

// Create persists a new user. The id is generated server-side, a blank
// username defaults to the email, and the password is hashed before the
// record ever reaches the store.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = in.Email
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("password hashing failed")
		return nil, domain.ErrDataOperation
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        in.Email,
		PasswordHash: hash,
	}

	s.log.Debug().Str("id", user.ID).Str("email", user.Email).Msg("creating user")
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, s.writeError(err, "user insert failed")
	}

	view := toUserView(user)
	return &view, nil
}

// Update applies the merge-on-update contract: id, email, and roles always
// come from the stored record, username and password from the caller, and the
// password is re-hashed on every call. A caller cannot alter id or email here.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*ports.UserView, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Str("id", id).Msg("user not found for update")
			return nil, err
		}
		s.log.Error().Err(err).Str("id", id).Msg("user lookup for update failed")
		return nil, domain.ErrDataOperation
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = existing.Username
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("password hashing failed")
		return nil, domain.ErrDataOperation
	}

	merged := &domain.User{
		ID:           existing.ID,
		Username:     username,
		Email:        existing.Email,
		PasswordHash: hash,
		Roles:        existing.Roles,
	}

	s.log.Debug().Str("id", merged.ID).Str("username", merged.Username).Msg("updating user")
	if err := s.users.UpdateByID(ctx, merged.ID, merged.Username, merged.PasswordHash); err != nil {
		return nil, s.writeError(err, "user update failed")
	}

	view := toUserView(merged)
	return &view, nil
}

// Delete removes a user by id. Deleting an id that no longer exists is
// indistinguishable from success.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("user delete failed")
		return domain.ErrDataOperation
	}
	return nil
}

// FindWithAuthorities loads a user by username and populates Roles from the
// join table. The login flow uses this to embed authority data in the session.
func (s *UserService) FindWithAuthorities(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("username", username).Msg("user lookup failed")
		return nil, domain.ErrDataOperation
	}

	roles, err := s.roles.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error().Err(err).Str("id", user.ID).Msg("role lookup failed")
		return nil, domain.ErrDataOperation
	}
	user.Roles = roles

	s.log.Debug().Str("id", user.ID).Int("roles", len(roles)).Msg("loaded user with authorities")
	return user, nil
}

type lookupFn func(ctx context.Context) (*domain.User, error)

func (s *UserService) findOne(ctx context.Context, field, value string, lookup lookupFn) (*ports.UserView, error) {
	user, err := lookup(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Str(field, value).Msg("user not found")
			return nil, fmt.Errorf("user by %s %q: %w", field, value, domain.ErrUserNotFound)
		}
		s.log.Error().Err(err).Str(field, value).Msg("user lookup failed")
		return nil, domain.ErrDataOperation
	}

	s.log.Debug().Str(field, value).Str("id", user.ID).Msg("got user")
	view := toUserView(user)
	return &view, nil
}

// writeError translates a store failure from a write path: uniqueness
// violations pass through as ErrUserExists, everything else collapses to
// ErrDataOperation with the cause logged server-side only.
func (s *UserService) writeError(err error, msg string) error {
	if errors.Is(err, domain.ErrUserExists) {
		s.log.Error().Msg("user already exists")
		return domain.ErrUserExists
	}
	s.log.Error().Err(err).Msg(msg)
	return domain.ErrDataOperation
}

// toUserView builds the outward projection field by field. The hash has no
// destination field, so it cannot be serialized outward.
func toUserView(u *domain.User) ports.UserView {
	return ports.UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
