package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's role within its company.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSales     Role = "sales"
	RoleTechnical Role = "technical"
	RolePricing   Role = "pricing"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleTechnical, RolePricing:
		return true
	}
	return false
}

// Status is a user's account status.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// User represents a login principal scoped to exactly one company.
// PasswordHash is always bcrypt output, never plaintext, and must never be
// serialized to clients.
type User struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
