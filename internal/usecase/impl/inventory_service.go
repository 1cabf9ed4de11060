// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/errors"
	"stockroom/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPage          = 1
	defaultLimit         = 10
	maxLimit             = 100
	defaultSearchLimit   = 20
	defaultLowStockLevel = 10
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo     repository.InventoryRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	threshold := defaultLowStockLevel
	if params.Config != nil && params.Config.Report.LowStockThreshold > 0 {
		threshold = params.Config.Report.LowStockThreshold
	}

	return &inventoryService{
		inventoryRepo:     params.InventoryRepo,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

// CreateItem creates an inventory item recording the acting user.
func (srv *inventoryService) CreateItem(ctx context.Context, input usecase.CreateItemInput, userID int64) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		SKU:         normalizeSKU(input.SKU),
		CreatedByID: userID,
		UpdatedByID: userID,
	}

	if err := srv.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	srv.logger.Info("inventory item created",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
		slog.Int64("user_id", userID))

	return item, nil
}

// ListItems returns a page of items with filtering and sorting.
func (srv *inventoryService) ListItems(ctx context.Context, input usecase.ListItemsInput) ([]*entity.InventoryItem, usecase.Pagination, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	query := repository.InventoryListQuery{
		Search:            strings.TrimSpace(input.Search),
		LowStock:          input.LowStock,
		LowStockThreshold: srv.lowStockThreshold,
		Sort:              normalizeSort(input.SortBy),
		Descending:        !strings.EqualFold(input.SortOrder, "ASC"),
		Offset:            (page - 1) * limit,
		Limit:             limit,
	}

	items, total, err := srv.inventoryRepo.List(ctx, query)
	if err != nil {
		return nil, usecase.Pagination{}, err
	}

	return items, usecase.NewPagination(page, limit, total), nil
}

// GetItem returns a single item by ID.
func (srv *inventoryService) GetItem(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	item, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update recording the acting user.
func (srv *inventoryService) UpdateItem(ctx context.Context, id int64, input usecase.UpdateItemInput, userID int64) (*entity.InventoryItem, error) {
	item, err := srv.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		item.UnitPrice = input.UnitPrice
	}
	if input.SKU != nil {
		item.SKU = normalizeSKU(input.SKU)
	}
	item.UpdatedByID = userID

	if err := srv.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an item by ID.
func (srv *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := srv.inventoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return err
	}

	srv.logger.Info("inventory item deleted", slog.Int64("item_id", id))

	return nil
}

// UpdateQuantity sets the absolute quantity of an item.
func (srv *inventoryService) UpdateQuantity(ctx context.Context, id int64, quantity int, userID int64) (*entity.InventoryItem, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be zero or positive")
	}

	return srv.UpdateItem(ctx, id, usecase.UpdateItemInput{Quantity: &quantity}, userID)
}

// SearchItems returns items whose name or description matches the term.
func (srv *inventoryService) SearchItems(ctx context.Context, term string, limit int) ([]*entity.InventoryItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search term is required")
	}

	if limit <= 0 || limit > maxLimit {
		limit = defaultSearchLimit
	}

	return srv.inventoryRepo.Search(ctx, term, limit)
}

// LowStockItems returns items below the given threshold, falling back to
// the configured default when none is given.
func (srv *inventoryService) LowStockItems(ctx context.Context, threshold int) ([]*entity.InventoryItem, error) {
	if threshold <= 0 {
		threshold = srv.lowStockThreshold
	}

	return srv.inventoryRepo.FindBelowQuantity(ctx, threshold)
}

// Stats returns aggregate inventory counters.
func (srv *inventoryService) Stats(ctx context.Context) (*usecase.InventoryStats, error) {
	agg, err := srv.inventoryRepo.Aggregate(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &usecase.InventoryStats{
		TotalItems:      agg.TotalItems,
		LowStockItems:   agg.LowStockItems,
		OutOfStockItems: agg.OutOfStockItems,
		TotalValue:      agg.TotalValue,
	}, nil
}

// normalizeSKU treats empty SKUs as absent so the unique index ignores them.
func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*sku)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func normalizeSort(sortBy string) string {
	switch sortBy {
	case repository.SortByName, repository.SortByQuantity, repository.SortByUnitPrice,
		repository.SortByCreatedAt, repository.SortByUpdatedAt:
		return sortBy
	default:
		return repository.SortByCreatedAt
	}
}
