package model

import (
	"time"
)

// DeliveryAttemptModel mirrors the 'delivery_attempts' table, the permanent
// ledger of outgoing mail. Rows are never updated after finalization.
type DeliveryAttemptModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	RecipientEmail string     `gorm:"type:varchar(255);not null;index"`
	Subject        string     `gorm:"type:varchar(500);not null"`
	Content        string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:pending;index"`
	SentByID       int64      `gorm:"not null;index"`
	SentBy         *UserModel `gorm:"foreignKey:SentByID"`
	SentAt         *time.Time
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAttemptModel) TableName() string {
	return "delivery_attempts"
}
