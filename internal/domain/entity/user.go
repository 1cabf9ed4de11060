// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an operator account in the inventory system. Accounts are issued and
// authenticated by the external identity boundary; this service only records
// "who" acted on inventory and deliveries.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialized; managed by the external auth boundary.
	RoleID       int64      `json:"role_id"`
	Role         *Role      `json:"role,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Role is a named permission bucket (e.g. Admin, Manager, Viewer).
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserRef is the minimal identity attached to enriched reads (inventory
// creator/updater, delivery sender). It deliberately carries no role or
// contact data.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
