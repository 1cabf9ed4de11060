package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// Pagination describes the page window of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives the page envelope from a total row count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// CreateItemInput carries the fields accepted when creating an inventory item.
type CreateItemInput struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   *float64
	SKU         *string
}

// UpdateItemInput carries the optional fields of a partial item update.
// Nil fields are left unchanged.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Quantity    *int
	UnitPrice   *float64
	SKU         *string
}

// ListItemsInput describes an inventory listing request.
type ListItemsInput struct {
	Page      int
	Limit     int
	Search    string
	LowStock  bool
	SortBy    string
	SortOrder string
}

// InventoryStats aggregates the inventory for the stats endpoint.
type InventoryStats struct {
	TotalItems      int64   `json:"totalItems"`
	LowStockItems   int64   `json:"lowStockItems"`
	OutOfStockItems int64   `json:"outOfStockItems"`
	TotalValue      float64 `json:"totalValue"`
}

// InventoryUsecase defines the interface for inventory management use cases
type InventoryUsecase interface {
	// CreateItem creates an inventory item recording the acting user
	CreateItem(ctx context.Context, input CreateItemInput, userID int64) (*entity.InventoryItem, error)

	// ListItems returns a page of items with filtering and sorting
	ListItems(ctx context.Context, input ListItemsInput) ([]*entity.InventoryItem, Pagination, error)

	// GetItem returns a single item by ID
	GetItem(ctx context.Context, id int64) (*entity.InventoryItem, error)

	// UpdateItem applies a partial update recording the acting user
	UpdateItem(ctx context.Context, id int64, input UpdateItemInput, userID int64) (*entity.InventoryItem, error)

	// DeleteItem removes an item by ID
	DeleteItem(ctx context.Context, id int64) error

	// UpdateQuantity sets the absolute quantity of an item
	UpdateQuantity(ctx context.Context, id int64, quantity int, userID int64) (*entity.InventoryItem, error)

	// SearchItems returns items whose name or description matches the term
	SearchItems(ctx context.Context, term string, limit int) ([]*entity.InventoryItem, error)

	// LowStockItems returns items below the given threshold; zero or
	// negative falls back to the configured default
	LowStockItems(ctx context.Context, threshold int) ([]*entity.InventoryItem, error)

	// Stats returns aggregate inventory counters
	Stats(ctx context.Context) (*InventoryStats, error)
}
