package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrMerchantNotFound is a domain-specific error returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantListQuery describes a filtered, paginated directory read.
type MerchantListQuery struct {
	Search string // Free-text match against name and email.
	Active *bool  // Nil means both active and inactive.
	Offset int
	Limit  int
}

// MerchantAggregate carries the directory-wide counters.
type MerchantAggregate struct {
	TotalMerchants    int64
	ActiveMerchants   int64
	InactiveMerchants int64
}

// MerchantRepository defines the standard operations for the recipient directory.
type MerchantRepository interface {
	// List returns one page of merchants ordered by creation date descending,
	// plus the total match count.
	List(ctx context.Context, q MerchantListQuery) ([]*entity.Merchant, int64, error)

	// FindByID retrieves a single merchant.
	FindByID(ctx context.Context, id int64) (*entity.Merchant, error)

	// FindByEmails returns the merchants whose (normalized) email is in the given set.
	FindByEmails(ctx context.Context, emails []string) ([]*entity.Merchant, error)

	// Create persists a new merchant. A unique-index violation on email is
	// mapped to the domain conflict error.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// Update persists changes to an existing merchant, with the same conflict mapping as Create.
	Update(ctx context.Context, merchant *entity.Merchant) error

	// Delete removes a merchant permanently.
	Delete(ctx context.Context, id int64) error

	// ActiveEmails returns the addresses of all active merchants, ascending.
	// This is the default recipient set for "send to all".
	ActiveEmails(ctx context.Context) ([]string, error)

	// Aggregate computes the directory counters.
	Aggregate(ctx context.Context) (*MerchantAggregate, error)
}
