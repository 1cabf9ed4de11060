// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrItemNotFound is a domain-specific error returned when an inventory item is not found.
var ErrItemNotFound = errors.New("inventory item not found")

// Valid sort columns for inventory listings. Anything else falls back to created_at.
const (
	SortByName      = "name"
	SortByQuantity  = "quantity"
	SortByUnitPrice = "unit_price"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

// InventoryListQuery describes a filtered, sorted, paginated inventory read.
type InventoryListQuery struct {
	Search            string // Free-text match against name, description and SKU.
	LowStock          bool   // Restrict to quantity < LowStockThreshold.
	LowStockThreshold int
	Sort              string // One of the SortBy constants; invalid values fall back to created_at.
	Descending        bool
	Offset            int
	Limit             int
}

// InventoryAggregate carries the catalog-wide statistics in one round trip set.
type InventoryAggregate struct {
	TotalItems      int64
	LowStockItems   int64
	OutOfStockItems int64
	TotalValue      float64 // Sum of quantity * unit price, null prices counted as 0.
}

// InventoryRepository defines the standard operations for inventory persistence.
// All reads return enriched records: creator and updater references are always resolved.
type InventoryRepository interface {
	// List returns one page of enriched items matching the query plus the total match count.
	List(ctx context.Context, q InventoryListQuery) ([]*entity.InventoryItem, int64, error)

	// FindByID retrieves a single enriched item.
	FindByID(ctx context.Context, id int64) (*entity.InventoryItem, error)

	// Create persists a new item. A unique-index violation on name or SKU is
	// mapped to the domain conflict error.
	Create(ctx context.Context, item *entity.InventoryItem) error

	// Update persists changes to an existing item, with the same conflict mapping as Create.
	Update(ctx context.Context, item *entity.InventoryItem) error

	// Delete removes an item permanently.
	Delete(ctx context.Context, id int64) error

	// Search returns up to limit enriched items matching the free-text query, ordered by name.
	Search(ctx context.Context, query string, limit int) ([]*entity.InventoryItem, error)

	// FindBelowQuantity returns all items with quantity below threshold, ordered by quantity ascending.
	FindBelowQuantity(ctx context.Context, threshold int) ([]*entity.InventoryItem, error)

	// Aggregate computes catalog statistics using the given low-stock threshold.
	Aggregate(ctx context.Context, lowStockThreshold int) (*InventoryAggregate, error)

	// ListForReport returns the report snapshot: every item ordered by name
	// ascending, bare (no creator/updater enrichment).
	ListForReport(ctx context.Context) ([]*entity.InventoryItem, error)
}
