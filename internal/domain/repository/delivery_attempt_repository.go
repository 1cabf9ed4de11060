package repository

import (
	"context"
	"errors"
	"time"

	"stockroom/internal/domain/entity"
)

// ErrAttemptNotFound is a domain-specific error returned when a delivery attempt is not found.
var ErrAttemptNotFound = errors.New("delivery attempt not found")

// AttemptListQuery describes a filtered, paginated ledger read.
type AttemptListQuery struct {
	Status   entity.DeliveryStatus // Empty means all states.
	DateFrom *time.Time            // Inclusive lower bound on created_at.
	DateTo   *time.Time            // Inclusive upper bound on created_at.
	Offset   int
	Limit    int
}

// DeliveryAttemptRepository is the persistence contract for the delivery
// ledger. The dispatcher writes through Create/MarkSent/MarkFailed; everything
// else is a read surface.
type DeliveryAttemptRepository interface {
	// Create persists a new attempt. The caller sets Pending; the row must
	// exist before the send capability is invoked.
	Create(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// MarkSent finalizes an attempt as successfully delivered at sentAt.
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error

	// MarkFailed finalizes an attempt as failed.
	MarkFailed(ctx context.Context, id int64) error

	// List returns one page of attempts, newest first, enriched with the
	// sender reference, plus the total match count. Content is not loaded.
	List(ctx context.Context, q AttemptListQuery) ([]*entity.DeliveryAttempt, int64, error)

	// FindByID retrieves a single attempt with its full rendered content and sender.
	FindByID(ctx context.Context, id int64) (*entity.DeliveryAttempt, error)
}
