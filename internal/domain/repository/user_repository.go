package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
)

// UserListQuery describes a filtered, paginated account read.
type UserListQuery struct {
	Role   string // Role name filter; empty means all roles.
	Active *bool
	Search string // Free-text match against username and email.
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// Reads always resolve the role relation.
type UserRepository interface {
	// List returns one page of users ordered by creation date descending,
	// plus the total match count.
	List(ctx context.Context, q UserListQuery) ([]*entity.User, int64, error)

	// FindByID retrieves a single user with role.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create persists a new user. Unique-index violations on username or
	// email are mapped to the domain conflict errors.
	Create(ctx context.Context, user *entity.User) error

	// Update persists changes to an existing user, with the same conflict mapping as Create.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id int64) error
}

// RoleRepository exposes the read-only role lookup.
type RoleRepository interface {
	// FindAll returns every role ordered by id ascending.
	FindAll(ctx context.Context) ([]*entity.Role, error)

	// FindByID retrieves a single role.
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
}
