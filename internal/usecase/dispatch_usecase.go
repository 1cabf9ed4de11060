package usecase

import (
	"context"
	"time"

	"stockroom/internal/domain/entity"
)

// SendOutcome is the per-recipient result of a dispatch. Exactly one of
// MessageID and Error is set.
type SendOutcome struct {
	Email     string `json:"email"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult summarizes a batch dispatch. Results keeps the order of
// the requested recipients.
type BatchResult struct {
	TotalSent   int           `json:"totalSent"`
	TotalFailed int           `json:"totalFailed"`
	Results     []SendOutcome `json:"results"`
}

// ListAttemptsInput describes a delivery history listing request.
type ListAttemptsInput struct {
	Page     int
	Limit    int
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// DispatchUsecase defines the interface for mail dispatch and delivery
// history use cases
type DispatchUsecase interface {
	// SendOne dispatches a single message, recording the attempt before
	// the send and finalizing its status afterwards
	SendOne(ctx context.Context, to, subject, htmlContent string, sentByID int64) (SendOutcome, error)

	// SendBatch dispatches one message per recipient over a bounded
	// worker pool; each recipient gets its own attempt record
	SendBatch(ctx context.Context, recipients []string, subject, htmlContent string, sentByID int64) (*BatchResult, error)

	// ListAttempts returns a page of delivery attempts, newest first
	ListAttempts(ctx context.Context, input ListAttemptsInput) ([]*entity.DeliveryAttempt, Pagination, error)

	// GetAttempt returns a single delivery attempt by ID
	GetAttempt(ctx context.Context, id int64) (*entity.DeliveryAttempt, error)
}
