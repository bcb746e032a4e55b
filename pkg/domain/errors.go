package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Conflict errors
var (
	ErrEmailTaken = errors.New("user with this email already exists")
	ErrGSTINTaken = errors.New("company with this GSTIN already exists")
)

// Validation errors
var (
	ErrLegalNameRequired = errors.New("company legal name is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrWeakPassword      = errors.New("password must be at least 8 characters long")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Authorization errors
var (
	ErrNotAdmin = errors.New("only admins can create new users")
)
