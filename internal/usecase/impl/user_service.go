package impl

import (
	"context"
	"log/slog"
	"strings"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/errors"
	"stockroom/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		roleRepo: params.RoleRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// CreateUser registers an account with a hashed password.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if _, err := srv.roleRepo.FindByID(ctx, input.RoleID); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrInvalidRole
		}

		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		RoleID:       input.RoleID,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.logger.Info("user created",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return user, nil
}

// ListUsers returns a page of accounts.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]*entity.User, usecase.Pagination, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	query := repository.UserListQuery{
		Role:   strings.TrimSpace(input.Role),
		Active: input.Active,
		Search: strings.TrimSpace(input.Search),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	users, total, err := srv.userRepo.List(ctx, query)
	if err != nil {
		return nil, usecase.Pagination{}, err
	}

	return users, usecase.NewPagination(page, limit, total), nil
}

// GetUser returns a single account by ID.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// UpdateUser applies a partial update, rehashing the password when given.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		user.PasswordHash = hash
	}
	if input.RoleID != nil {
		if _, err := srv.roleRepo.FindByID(ctx, *input.RoleID); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return nil, domainerrors.ErrInvalidRole
			}

			return nil, err
		}
		user.RoleID = *input.RoleID
		user.Role = nil
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account by ID.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.logger.Info("user deleted", slog.Int64("user_id", id))

	return nil
}

// ListRoles returns all assignable roles.
func (srv *userService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	return srv.roleRepo.FindAll(ctx)
}
