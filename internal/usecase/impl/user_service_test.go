package impl

import (
	"context"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockRoleRepository,
	*mockSvc.MockPasswordHasher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		Hasher:   hasher,
		Logger:   discardLogger(),
	})

	return service, userRepo, roleRepo, hasher
}

func TestUserService_CreateUser_Success(t *testing.T) {
	service, userRepo, roleRepo, hasher := createTestUserService(t)
	ctx := context.Background()

	roleRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Role{ID: 2, Name: "manager"}, nil)
	hasher.EXPECT().Hash("s3cret").Return("$2a$12$hashed", nil)

	userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Username == "alice" &&
			user.Email == "alice@example.com" &&
			user.PasswordHash == "$2a$12$hashed" &&
			user.IsActive
	})).Run(func(_ context.Context, user *entity.User) {
		user.ID = 5
	}).Return(nil)

	user, err := service.CreateUser(ctx, usecase.CreateUserInput{
		Username: " alice ",
		Email:    " Alice@Example.COM ",
		Password: "s3cret",
		RoleID:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	service, _, roleRepo, _ := createTestUserService(t)
	ctx := context.Background()

	roleRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrRoleNotFound)

	_, err := service.CreateUser(ctx, usecase.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw",
		RoleID:   99,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	service, userRepo, roleRepo, hasher := createTestUserService(t)
	ctx := context.Background()

	roleRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Role{ID: 1, Name: "admin"}, nil)
	hasher.EXPECT().Hash("pw").Return("hash", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUsernameExists)

	_, err := service.CreateUser(ctx, usecase.CreateUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw",
		RoleID:   1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameExists)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	service, userRepo, _, hasher := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, Username: "alice", Email: "alice@example.com", PasswordHash: "old", RoleID: 2}
	userRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	hasher.EXPECT().Hash("newpw").Return("newhash", nil)
	userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.PasswordHash == "newhash"
	})).Return(nil)

	password := "newpw"
	user, err := service.UpdateUser(ctx, 5, usecase.UpdateUserInput{Password: &password})

	require.NoError(t, err)
	assert.Equal(t, "newhash", user.PasswordHash)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	service, userRepo, roleRepo, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5}, nil)
	roleRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrRoleNotFound)

	roleID := int64(42)
	_, err := service.UpdateUser(ctx, 5, usecase.UpdateUserInput{RoleID: &roleID})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(12)).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, 12)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().Delete(ctx, int64(12)).Return(repository.ErrUserNotFound)

	err := service.DeleteUser(ctx, 12)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListRoles(t *testing.T) {
	service, _, roleRepo, _ := createTestUserService(t)
	ctx := context.Background()

	roleRepo.EXPECT().FindAll(ctx).Return([]*entity.Role{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "manager"},
	}, nil)

	roles, err := service.ListRoles(ctx)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "admin", roles[0].Name)
}
