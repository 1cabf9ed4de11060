package postgres

import (
	"context"
	"strings"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// List returns one page of users ordered by creation date descending,
// plus the total match count.
func (repo *userRepository) List(ctx context.Context, q repository.UserListQuery) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if q.Role != "" {
		query = query.Where(
			"role_id IN (?)",
			repo.db.Model(&model.RoleModel{}).Select("id").Where("name = ?", q.Role),
		)
	}
	if q.Active != nil {
		query = query.Where("is_active = ?", *q.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := query.
		Preload("Role").
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// FindByID retrieves a single user with role.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The unique indexes on username and email are
// the authority on duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if converted := convertUserConstraintError(err); converted != nil {
			return converted
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists changes to an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("username", "email", "password_hash", "role_id", "is_active", "last_login").
		Updates(userM)
	if result.Error != nil {
		if converted := convertUserConstraintError(result.Error); converted != nil {
			return converted
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user permanently.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// convertUserConstraintError maps constraint violations to domain errors.
// Returns nil when the error is not a recognized constraint violation.
func convertUserConstraintError(err error) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(violatedConstraint(err), "email") {
			return domainerrors.ErrEmailExists
		}

		return domainerrors.ErrUsernameExists
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrInvalidRole
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required user fields")
	}

	return nil
}

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// FindAll returns every role ordered by id ascending.
func (repo *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// FindByID retrieves a single role.
func (repo *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by ID")
	}

	return toRoleDomain(&roleM), nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userM.ID,
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		RoleID:       userM.RoleID,
		IsActive:     userM.IsActive,
		LastLogin:    userM.LastLogin,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
	if userM.Role != nil {
		user.Role = toRoleDomain(userM.Role)
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		RoleID:       user.RoleID,
		IsActive:     user.IsActive,
		LastLogin:    user.LastLogin,
	}
}

func toRoleDomain(roleM *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          roleM.ID,
		Name:        roleM.Name,
		Description: roleM.Description,
		CreatedAt:   roleM.CreatedAt,
	}
}
