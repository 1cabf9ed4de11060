package entity

import (
	"time"
)

// InventoryItem is a single stocked product. Name and SKU are each globally
// unique among live records; uniqueness is enforced by the storage layer.
type InventoryItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   *float64  `json:"unit_price"` // Nil when the item has no price yet.
	SKU         *string   `json:"sku"`
	CreatedByID int64     `json:"-"`
	UpdatedByID int64     `json:"-"`
	CreatedBy   *UserRef  `json:"created_by,omitempty"`
	UpdatedBy   *UserRef  `json:"updated_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Value returns the stock value of the item, treating a missing unit price as zero.
func (i *InventoryItem) Value() float64 {
	if i.UnitPrice == nil {
		return 0
	}

	return float64(i.Quantity) * (*i.UnitPrice)
}
