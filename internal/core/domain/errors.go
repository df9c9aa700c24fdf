package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
	ErrUserExists   = errors.New("user already exists")
	ErrRoleExists   = errors.New("role already exists")

	// ErrInvalidCredentials covers every login failure: unknown identity,
	// wrong password, bad or expired token. One error for all causes so the
	// response never reveals which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden = errors.New("access forbidden")

	// ErrDataOperation stands in for any store failure that is not a
	// uniqueness violation. The underlying cause is logged, never returned.
	ErrDataOperation = errors.New("data operation failed")
)
