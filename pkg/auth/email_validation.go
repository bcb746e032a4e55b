package auth

import (
	"regexp"
	"strings"

	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Practical address-syntax check: one @, no whitespace, dotted domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxEmailLength = 254 // RFC 5321

// NormalizeEmail lowercases and trims an email address. All comparisons
// and storage use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail validates an email address for format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return domain.ErrInvalidEmail
	}
	if len(email) > maxEmailLength {
		return domain.ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	return nil
}
