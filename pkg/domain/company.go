package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant. Every user belongs to exactly one company.
type Company struct {
	ID               uuid.UUID
	LegalName        string
	GSTIN            *string
	Domain           *string
	Website          *string
	IndustryCategory *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
