package service

import (
	"context"
	"errors"

	"github.com/speech4j/security-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id

	insertErr error // if set, Insert returns this error
	updateErr error // if set, UpdateByID returns this error
	findErr   error // if set, every lookup returns this error

	lastLimit  int
	lastOffset int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindPage(_ context.Context, limit, offset int) ([]domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.lastLimit = limit
	r.lastOffset = offset

	out := make([]domain.User, 0, limit)
	i := 0
	for _, u := range r.users {
		if i >= offset && len(out) < limit {
			out = append(out, *cloneUser(u))
		}
		i++
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id, username, passwordHash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.Username = username
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubRoleRepo struct {
	roles       map[int]domain.Role
	assignments map[string]map[int]bool // userID -> set of roleIDs
	nextID      int

	failAll error // if set, every operation returns this error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{
		roles:       make(map[int]domain.Role),
		assignments: make(map[string]map[int]bool),
		nextID:      1,
	}
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int) (*domain.Role, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &role, nil
}

func (r *stubRoleRepo) Insert(_ context.Context, name string) (*domain.Role, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, role := range r.roles {
		if role.Name == name {
			return nil, domain.ErrRoleExists
		}
	}
	role := domain.Role{ID: r.nextID, Name: name}
	r.roles[role.ID] = role
	r.nextID++
	return &role, nil
}

func (r *stubRoleRepo) UpdateByID(_ context.Context, id int, name string) error {
	if r.failAll != nil {
		return r.failAll
	}
	for otherID, role := range r.roles {
		if otherID != id && role.Name == name {
			return domain.ErrRoleExists
		}
	}
	role, ok := r.roles[id]
	if !ok {
		return nil
	}
	role.Name = name
	r.roles[id] = role
	return nil
}

func (r *stubRoleRepo) DeleteByID(_ context.Context, id int) error {
	if r.failAll != nil {
		return r.failAll
	}
	delete(r.roles, id)
	return nil
}

func (r *stubRoleRepo) FindByUserID(_ context.Context, userID string) ([]domain.Role, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	var out []domain.Role
	for roleID := range r.assignments[userID] {
		out = append(out, r.roles[roleID])
	}
	return out, nil
}

func (r *stubRoleRepo) InsertUserRole(_ context.Context, userID string, roleID int) error {
	if r.failAll != nil {
		return r.failAll
	}
	if r.assignments[userID] == nil {
		r.assignments[userID] = make(map[int]bool)
	}
	if r.assignments[userID][roleID] {
		return domain.ErrRoleExists
	}
	r.assignments[userID][roleID] = true
	return nil
}

func (r *stubRoleRepo) DeleteUserRole(_ context.Context, userID string, roleID int) error {
	if r.failAll != nil {
		return r.failAll
	}
	delete(r.assignments[userID], roleID)
	return nil
}

type stubCache struct {
	entries     map[string][]string
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]string)}
}

func (c *stubCache) Get(_ context.Context, userID string) ([]string, bool) {
	names, ok := c.entries[userID]
	return names, ok
}

func (c *stubCache) Set(_ context.Context, userID string, names []string) {
	c.entries[userID] = names
}

func (c *stubCache) Invalidate(_ context.Context, userID string) {
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}

var errStoreDown = errors.New("store down")
