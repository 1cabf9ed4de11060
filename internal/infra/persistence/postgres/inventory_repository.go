// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// sortColumns maps the allowed sort keys to real columns. Anything else falls
// back to created_at so client input never reaches the ORDER BY clause raw.
var sortColumns = map[string]string{
	repository.SortByName:      "name",
	repository.SortByQuantity:  "quantity",
	repository.SortByUnitPrice: "unit_price",
	repository.SortByCreatedAt: "created_at",
	repository.SortByUpdatedAt: "updated_at",
}

// List returns one page of items matching the query plus the total match count.
func (repo *inventoryRepository) List(ctx context.Context, q repository.InventoryListQuery) ([]*entity.InventoryItem, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.InventoryItemModel{})

	if q.Search != "" {
		condition, args := searchCondition(q.Search)
		query = query.Where(condition, args...)
	}
	if q.LowStock {
		query = query.Where("quantity < ?", q.LowStockThreshold)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count inventory items")
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}

	var itemModels []*model.InventoryItemModel
	if err := query.
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Order(column + " " + direction).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&itemModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list inventory items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryDomain(itemM))
	}

	return items, total, nil
}

// FindByID retrieves a single item with its creator and updater references.
func (repo *inventoryRepository) FindByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel

	if err := repo.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by ID")
	}

	return toInventoryDomain(&itemM), nil
}

// Create persists a new item. The unique indexes on name and SKU are the
// authority on duplicates.
func (repo *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if converted := convertInventoryConstraintError(err); converted != nil {
			return converted
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update persists changes to an existing item.
func (repo *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryItemModel{}).
		Where("id = ?", item.ID).
		Select("name", "description", "quantity", "unit_price", "sku", "updated_by_id").
		Updates(itemM)
	if result.Error != nil {
		if converted := convertInventoryConstraintError(result.Error); converted != nil {
			return converted
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// Delete removes an item permanently.
func (repo *inventoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InventoryItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete inventory item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// searchCondition builds the case-insensitive free-text predicate shared by
// List and Search. Matching covers the item name, description, and SKU.
func searchCondition(term string) (string, []any) {
	pattern := "%" + term + "%"

	return "name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", []any{pattern, pattern, pattern}
}

// Search returns up to limit items matching the free-text query, ordered by name.
func (repo *inventoryRepository) Search(ctx context.Context, query string, limit int) ([]*entity.InventoryItem, error) {
	condition, args := searchCondition(query)

	var itemModels []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Where(condition, args...).
		Order("name ASC").
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search inventory items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryDomain(itemM))
	}

	return items, nil
}

// FindBelowQuantity returns all items with quantity below threshold, ordered by quantity ascending.
func (repo *inventoryRepository) FindBelowQuantity(ctx context.Context, threshold int) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Where("quantity < ?", threshold).
		Order("quantity ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low stock items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryDomain(itemM))
	}

	return items, nil
}

// Aggregate computes catalog statistics using the given low-stock threshold.
func (repo *inventoryRepository) Aggregate(ctx context.Context, lowStockThreshold int) (*repository.InventoryAggregate, error) {
	var agg repository.InventoryAggregate

	row := repo.db.WithContext(ctx).
		Model(&model.InventoryItemModel{}).
		Select(
			"COUNT(*) AS total_items, "+
				"COUNT(*) FILTER (WHERE quantity < ?) AS low_stock_items, "+
				"COUNT(*) FILTER (WHERE quantity = 0) AS out_of_stock_items, "+
				"COALESCE(SUM(quantity * COALESCE(unit_price, 0)), 0) AS total_value",
			lowStockThreshold,
		).
		Row()

	if err := row.Scan(&agg.TotalItems, &agg.LowStockItems, &agg.OutOfStockItems, &agg.TotalValue); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate inventory")
	}

	return &agg, nil
}

// ListForReport returns every item ordered by name ascending, without
// creator or updater enrichment.
func (repo *inventoryRepository) ListForReport(ctx context.Context) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items for report")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryDomain(itemM))
	}

	return items, nil
}

// convertInventoryConstraintError maps constraint violations to domain errors.
// Returns nil when the error is not a recognized constraint violation.
func convertInventoryConstraintError(err error) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(violatedConstraint(err), "sku") {
			return domainerrors.ErrItemSKUExists
		}

		return domainerrors.ErrItemNameExists
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("unknown user reference")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required item fields")
	}

	return nil
}

func toInventoryDomain(itemM *model.InventoryItemModel) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          itemM.ID,
		Name:        itemM.Name,
		Description: itemM.Description,
		Quantity:    itemM.Quantity,
		UnitPrice:   itemM.UnitPrice,
		SKU:         itemM.SKU,
		CreatedByID: itemM.CreatedByID,
		UpdatedByID: itemM.UpdatedByID,
		CreatedBy:   toUserRef(itemM.CreatedBy),
		UpdatedBy:   toUserRef(itemM.UpdatedBy),
		CreatedAt:   itemM.CreatedAt,
		UpdatedAt:   itemM.UpdatedAt,
	}
}

func fromInventoryDomain(item *entity.InventoryItem) *model.InventoryItemModel {
	return &model.InventoryItemModel{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		SKU:         item.SKU,
		CreatedByID: item.CreatedByID,
		UpdatedByID: item.UpdatedByID,
	}
}

func toUserRef(userM *model.UserModel) *entity.UserRef {
	if userM == nil {
		return nil
	}

	return &entity.UserRef{
		ID:       userM.ID,
		Username: userM.Username,
	}
}
