package entity

import (
	"time"
)

// Merchant is a report recipient in the distribution directory. Emails are
// stored trimmed and lower-cased; uniqueness is case-insensitive by virtue of
// that normalization plus a unique index.
type Merchant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
