package model

import (
	"time"
)

// InventoryItemModel mirrors the 'inventory_items' table. Name and SKU carry
// unique indexes so duplicate checks happen at the storage level rather than
// by racy pre-reads.
type InventoryItemModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	Quantity    int        `gorm:"not null;default:0"`
	UnitPrice   *float64   `gorm:"type:decimal(12,2)"`
	SKU         *string    `gorm:"type:varchar(100);uniqueIndex"`
	CreatedByID int64      `gorm:"not null;index"`
	CreatedBy   *UserModel `gorm:"foreignKey:CreatedByID"`
	UpdatedByID int64      `gorm:"not null"`
	UpdatedBy   *UserModel `gorm:"foreignKey:UpdatedByID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}
