package entity

import (
	"time"
)

// DeliveryStatus is the persisted state of one delivery attempt.
// Transitions are one-directional: Pending -> Sent or Pending -> Failed.
type DeliveryStatus string

const (
	// DeliveryPending means the attempt row exists but the send capability
	// has not completed yet.
	DeliveryPending DeliveryStatus = "pending"
	// DeliverySent is the terminal success state.
	DeliverySent DeliveryStatus = "sent"
	// DeliveryFailed is the terminal failure state.
	DeliveryFailed DeliveryStatus = "failed"
)

// Valid reports whether s is one of the known delivery states.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliverySent, DeliveryFailed:
		return true
	}

	return false
}

// DeliveryAttempt is the ledger entry for exactly one recipient of one
// dispatch. It is created in Pending state before the send capability is
// invoked, so a crash mid-send never leaves an attempt unaccounted for.
type DeliveryAttempt struct {
	ID             int64          `json:"id"`
	RecipientEmail string         `json:"recipient_email"`
	Subject        string         `json:"subject"`
	Content        string         `json:"content,omitempty"` // Omitted from list views for payload size.
	Status         DeliveryStatus `json:"status"`
	SentByID       int64          `json:"-"`
	SentBy         *UserRef       `json:"sent_by,omitempty"`
	SentAt         *time.Time     `json:"sent_at,omitempty"` // Set only on success.
	CreatedAt      time.Time      `json:"created_at"`
}
