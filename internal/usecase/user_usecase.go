package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// CreateUserInput carries the fields accepted when creating an account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	RoleID   int64
}

// UpdateUserInput carries the optional fields of a partial account
// update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	RoleID   *int64
	IsActive *bool
}

// ListUsersInput describes an account listing request.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
	Role   string
	Active *bool
}

// UserUsecase defines the interface for account management use cases
type UserUsecase interface {
	// CreateUser registers an account with a hashed password
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)

	// ListUsers returns a page of accounts
	ListUsers(ctx context.Context, input ListUsersInput) ([]*entity.User, Pagination, error)

	// GetUser returns a single account by ID
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// UpdateUser applies a partial update, rehashing the password when given
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an account by ID
	DeleteUser(ctx context.Context, id int64) error

	// ListRoles returns all assignable roles
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
