package handler

import (
	"net/http"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	mocksusecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Create(t *testing.T) {
	uc := mocksusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, testLogger())

	uc.EXPECT().
		CreateUser(mock.Anything, usecase.CreateUserInput{
			Username: "alice",
			Email:    "alice@corp.test",
			Password: "correct horse",
			RoleID:   2,
		}).
		Return(&entity.User{ID: 5, Username: "alice", Email: "alice@corp.test", RoleID: 2, IsActive: true}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"username":"alice","email":"alice@corp.test","password":"correct horse","roleId":2}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)
	assert.NotContains(t, rec.Body.String(), "correct horse")
}

func TestUserHandler_Create_ShortPassword(t *testing.T) {
	uc := mocksusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/users",
		`{"username":"alice","email":"alice@corp.test","password":"short","roleId":2}`)

	err := h.Create(c)
	require.Error(t, err)
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	uc := mocksusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, testLogger())

	uc.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidRole)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"username":"alice","email":"alice@corp.test","password":"correct horse","roleId":99}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_List_RoleAndStatusFilters(t *testing.T) {
	uc := mocksusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, testLogger())

	uc.EXPECT().
		ListUsers(mock.Anything, mock.MatchedBy(func(input usecase.ListUsersInput) bool {
			return input.Role == "Manager" && input.Active != nil && *input.Active
		})).
		Return([]*entity.User{{ID: 1, Username: "alice"}}, usecase.NewPagination(1, 10, 1), nil)

	c, rec := newTestContext(t, http.MethodGet, "/users?role=Manager&status=active", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ListRoles(t *testing.T) {
	uc := mocksusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, testLogger())

	uc.EXPECT().
		ListRoles(mock.Anything).
		Return([]*entity.Role{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Manager"}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/roles", "")

	require.NoError(t, h.ListRoles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Manager"`)
}
