package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub services for handler tests
// ---------------------------------------------------------------------------

type stubAuthService struct {
	token    string
	loginErr error
	users    *stubUserService
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubAuthService) Register(ctx context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	return s.users.Create(ctx, in)
}

type stubUserService struct {
	byID map[string]ports.UserView

	lastLimit  int
	lastOffset int

	createErr error
}

func newStubUserService() *stubUserService {
	return &stubUserService{byID: make(map[string]ports.UserView)}
}

func (s *stubUserService) List(_ context.Context, limit, offset int) ([]ports.UserView, error) {
	s.lastLimit = limit
	s.lastOffset = offset
	out := make([]ports.UserView, 0, len(s.byID))
	for _, v := range s.byID {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*ports.UserView, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &v, nil
}

func (s *stubUserService) GetByEmail(_ context.Context, email string) (*ports.UserView, error) {
	for _, v := range s.byID {
		if v.Email == email {
			return &v, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) GetByUsername(_ context.Context, username string) (*ports.UserView, error) {
	for _, v := range s.byID {
		if v.Username == username {
			return &v, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Create(_ context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, v := range s.byID {
		if v.Email == in.Email {
			return nil, domain.ErrUserExists
		}
	}
	username := in.Username
	if username == "" {
		username = in.Email
	}
	view := ports.UserView{ID: uuid.NewString(), Username: username, Email: in.Email}
	s.byID[view.ID] = view
	return &view, nil
}

func (s *stubUserService) Update(_ context.Context, id string, in ports.UpdateUserInput) (*ports.UserView, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != "" {
		v.Username = in.Username
	}
	s.byID[id] = v
	return &v, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *stubUserService) FindWithAuthorities(_ context.Context, username string) (*domain.User, error) {
	for _, v := range s.byID {
		if v.Username == username {
			return &domain.User{ID: v.ID, Username: v.Username, Email: v.Email}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubRoleService struct {
	roles map[int]domain.Role

	removed [][2]any // {userID, roleID} pairs passed to RemoveRoleFromUser
}

func newStubRoleService() *stubRoleService {
	return &stubRoleService{roles: make(map[int]domain.Role)}
}

func (s *stubRoleService) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRoleService) GetByID(_ context.Context, id int) (*domain.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &r, nil
}

func (s *stubRoleService) Create(_ context.Context, name string) (*domain.Role, error) {
	for _, r := range s.roles {
		if r.Name == name {
			return nil, domain.ErrRoleExists
		}
	}
	role := domain.Role{ID: len(s.roles) + 1, Name: name}
	s.roles[role.ID] = role
	return &role, nil
}

func (s *stubRoleService) Update(_ context.Context, id int, name string) (*domain.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	r.Name = name
	s.roles[id] = r
	return &r, nil
}

func (s *stubRoleService) Delete(_ context.Context, id int) error {
	delete(s.roles, id)
	return nil
}

func (s *stubRoleService) FindByUserID(_ context.Context, userID string) ([]domain.Role, error) {
	return nil, nil
}

func (s *stubRoleService) AddRoleToUser(_ context.Context, userID string, roleID int) (*domain.Role, error) {
	r, ok := s.roles[roleID]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &r, nil
}

func (s *stubRoleService) RemoveRoleFromUser(_ context.Context, userID string, roleID int) error {
	s.removed = append(s.removed, [2]any{userID, roleID})
	return nil
}
