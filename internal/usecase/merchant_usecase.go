package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// CreateMerchantInput carries the fields accepted when registering a merchant.
type CreateMerchantInput struct {
	Name   string
	Email  string
	Active *bool
}

// UpdateMerchantInput carries the optional fields of a partial merchant
// update. Nil fields are left unchanged.
type UpdateMerchantInput struct {
	Name   *string
	Email  *string
	Active *bool
}

// ListMerchantsInput describes a merchant listing request.
type ListMerchantsInput struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

// BulkImportResult summarizes a free-text email import.
type BulkImportResult struct {
	Imported  int                `json:"imported"`
	Skipped   int                `json:"skipped"`
	Errors    []string           `json:"errors"`
	Merchants []*entity.Merchant `json:"merchants"`
}

// MerchantStats aggregates the merchant registry for the stats endpoint.
type MerchantStats struct {
	TotalMerchants    int64 `json:"totalMerchants"`
	ActiveMerchants   int64 `json:"activeMerchants"`
	InactiveMerchants int64 `json:"inactiveMerchants"`
}

// MerchantUsecase defines the interface for report recipient management use cases
type MerchantUsecase interface {
	// CreateMerchant registers a single recipient
	CreateMerchant(ctx context.Context, input CreateMerchantInput) (*entity.Merchant, error)

	// ListMerchants returns a page of recipients with filtering
	ListMerchants(ctx context.Context, input ListMerchantsInput) ([]*entity.Merchant, Pagination, error)

	// GetMerchant returns a single recipient by ID
	GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error)

	// UpdateMerchant applies a partial update
	UpdateMerchant(ctx context.Context, id int64, input UpdateMerchantInput) (*entity.Merchant, error)

	// DeleteMerchant removes a recipient by ID
	DeleteMerchant(ctx context.Context, id int64) error

	// BulkImport parses a free-text blob of addresses, skips invalid and
	// duplicate entries, and registers the rest. New recipients get the
	// default name when given, otherwise a name derived from the address
	BulkImport(ctx context.Context, text, defaultName string) (*BulkImportResult, error)

	// ActiveEmails returns the addresses of all active recipients
	ActiveEmails(ctx context.Context) ([]string, error)

	// Stats returns aggregate recipient counters
	Stats(ctx context.Context) (*MerchantStats, error)
}
