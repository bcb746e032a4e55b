package auth

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/salesdock/tenant-idm/pkg/domain"
	"github.com/salesdock/tenant-idm/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcryptCost is the bcrypt work factor for new password hashes.
	bcryptCost = 10

	// minPasswordLength applies at creation only, never at verification:
	// an existing hash of a shorter password still verifies.
	minPasswordLength = 8
)

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a bcrypt hash in constant time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the password against the creation-time policy.
// Length is counted in characters, not bytes.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.ErrWeakPassword
	}
	return nil
}

// PasswordService verifies login credentials.
type PasswordService struct {
	users *repository.UsersRepository
}

// NewPasswordService creates a new password service.
func NewPasswordService(users *repository.UsersRepository) *PasswordService {
	return &PasswordService{users: users}
}

// Authenticate verifies an email and password and returns the user on
// success. A missing user and a wrong password both yield
// domain.ErrInvalidCredentials so the two cases are indistinguishable
// to the caller.
func (s *PasswordService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
