package postgres

import (
	"context"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// List returns one page of merchants ordered by creation date descending,
// plus the total match count.
func (repo *merchantRepository) List(ctx context.Context, q repository.MerchantListQuery) ([]*entity.Merchant, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MerchantModel{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if q.Active != nil {
		query = query.Where("is_active = ?", *q.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count merchants")
	}

	var merchantModels []*model.MerchantModel
	if err := query.
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&merchantModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, total, nil
}

// FindByID retrieves a single merchant.
func (repo *merchantRepository) FindByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindByEmails returns the merchants whose email is in the given set.
func (repo *merchantRepository) FindByEmails(ctx context.Context, emails []string) ([]*entity.Merchant, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	var merchantModels []*model.MerchantModel
	if err := repo.db.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by emails")
	}

	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants, nil
}

// Create persists a new merchant. The unique index on email is the authority
// on duplicates.
func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMerchantEmailExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required merchant fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

// Update persists changes to an existing merchant.
func (repo *merchantRepository) Update(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", merchant.ID).
		Select("name", "email", "is_active").
		Updates(merchantM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrMerchantEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update merchant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// Delete removes a merchant permanently.
func (repo *merchantRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MerchantModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete merchant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// ActiveEmails returns the addresses of all active merchants, ascending.
func (repo *merchantRepository) ActiveEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("is_active = ?", true).
		Order("email ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active merchant emails")
	}

	return emails, nil
}

// Aggregate computes the directory counters.
func (repo *merchantRepository) Aggregate(ctx context.Context) (*repository.MerchantAggregate, error) {
	var agg repository.MerchantAggregate

	row := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Select(
			"COUNT(*) AS total_merchants, " +
				"COUNT(*) FILTER (WHERE is_active) AS active_merchants, " +
				"COUNT(*) FILTER (WHERE NOT is_active) AS inactive_merchants",
		).
		Row()

	if err := row.Scan(&agg.TotalMerchants, &agg.ActiveMerchants, &agg.InactiveMerchants); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate merchants")
	}

	return &agg, nil
}

func toMerchantDomain(merchantM *model.MerchantModel) *entity.Merchant {
	return &entity.Merchant{
		ID:        merchantM.ID,
		Name:      merchantM.Name,
		Email:     merchantM.Email,
		IsActive:  merchantM.IsActive,
		CreatedAt: merchantM.CreatedAt,
		UpdatedAt: merchantM.UpdatedAt,
	}
}

func fromMerchantDomain(merchant *entity.Merchant) *model.MerchantModel {
	return &model.MerchantModel{
		ID:       merchant.ID,
		Name:     merchant.Name,
		Email:    merchant.Email,
		IsActive: merchant.IsActive,
	}
}
