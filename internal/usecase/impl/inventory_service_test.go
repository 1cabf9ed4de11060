package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestInventoryService(t *testing.T) (usecase.InventoryUsecase, *mockRepo.MockInventoryRepository) {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)

	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        discardLogger(),
	})

	return service, inventoryRepo
}

func TestInventoryService_CreateItem_Success(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	price := 19.99
	sku := "  WID-001  "

	inventoryRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, item *entity.InventoryItem) {
		item.ID = 42
	}).Return(nil)

	item, err := service.CreateItem(ctx, usecase.CreateItemInput{
		Name:      "  Widget  ",
		Quantity:  5,
		UnitPrice: &price,
		SKU:       &sku,
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "Widget", item.Name)
	require.NotNil(t, item.SKU)
	assert.Equal(t, "WID-001", *item.SKU)
	assert.Equal(t, int64(7), item.CreatedByID)
	assert.Equal(t, int64(7), item.UpdatedByID)
}

func TestInventoryService_CreateItem_EmptySKUStoredAsAbsent(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	empty := "   "
	inventoryRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	item, err := service.CreateItem(ctx, usecase.CreateItemInput{Name: "Widget", SKU: &empty}, 1)

	require.NoError(t, err)
	assert.Nil(t, item.SKU)
}

func TestInventoryService_CreateItem_Conflict(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrItemNameExists)

	_, err := service.CreateItem(ctx, usecase.CreateItemInput{Name: "Widget"}, 1)

	assert.ErrorIs(t, err, domainerrors.ErrItemNameExists)
}

func TestInventoryService_ListItems_NormalizesQuery(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	expected := repository.InventoryListQuery{
		LowStockThreshold: defaultLowStockLevel,
		Sort:              repository.SortByCreatedAt,
		Descending:        true,
		Offset:            0,
		Limit:             defaultLimit,
	}
	inventoryRepo.EXPECT().List(ctx, expected).Return([]*entity.InventoryItem{{ID: 1}}, 25, nil)

	items, pagination, err := service.ListItems(ctx, usecase.ListItemsInput{
		Page:   0,
		Limit:  0,
		SortBy: "id; DROP TABLE items",
	})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestInventoryService_ListItems_AscendingSort(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	expected := repository.InventoryListQuery{
		LowStockThreshold: defaultLowStockLevel,
		Sort:              repository.SortByName,
		Descending:        false,
		Offset:            10,
		Limit:             10,
	}
	inventoryRepo.EXPECT().List(ctx, expected).Return(nil, 0, nil)

	_, _, err := service.ListItems(ctx, usecase.ListItemsInput{
		Page:      2,
		Limit:     10,
		SortBy:    repository.SortByName,
		SortOrder: "asc",
	})

	require.NoError(t, err)
}

func TestInventoryService_GetItem_NotFound(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrItemNotFound)

	_, err := service.GetItem(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestInventoryService_UpdateItem_PartialFields(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.InventoryItem{ID: 5, Name: "Widget", Quantity: 3, CreatedByID: 1, UpdatedByID: 1}
	inventoryRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)

	quantity := 8
	inventoryRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	item, err := service.UpdateItem(ctx, 5, usecase.UpdateItemInput{Quantity: &quantity}, 9)

	require.NoError(t, err)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, 8, item.Quantity)
	assert.Equal(t, int64(1), item.CreatedByID)
	assert.Equal(t, int64(9), item.UpdatedByID)
}

func TestInventoryService_UpdateQuantity_RejectsNegative(t *testing.T) {
	service, _ := createTestInventoryService(t)

	_, err := service.UpdateQuantity(context.Background(), 5, -1, 1)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestInventoryService_DeleteItem_NotFound(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().Delete(ctx, int64(3)).Return(repository.ErrItemNotFound)

	err := service.DeleteItem(ctx, 3)

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestInventoryService_SearchItems_RequiresTerm(t *testing.T) {
	service, _ := createTestInventoryService(t)

	_, err := service.SearchItems(context.Background(), "   ", 10)

	assert.Error(t, err)
}

func TestInventoryService_Stats(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().Aggregate(ctx, defaultLowStockLevel).Return(&repository.InventoryAggregate{
		TotalItems:      12,
		LowStockItems:   3,
		OutOfStockItems: 1,
		TotalValue:      480.5,
	}, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalItems)
	assert.Equal(t, int64(3), stats.LowStockItems)
	assert.Equal(t, int64(1), stats.OutOfStockItems)
	assert.Equal(t, 480.5, stats.TotalValue)
}

func TestInventoryService_Stats_RepositoryError(t *testing.T) {
	service, inventoryRepo := createTestInventoryService(t)
	ctx := context.Background()

	inventoryRepo.EXPECT().Aggregate(ctx, defaultLowStockLevel).Return(nil, errors.New("connection reset"))

	_, err := service.Stats(ctx)

	assert.Error(t, err)
}
