package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/pkg/domain"
	"github.com/salesdock/tenant-idm/pkg/repository"
)

// ProvisionInput holds the fields for creating an additional user under
// an existing company.
type ProvisionInput struct {
	Email    string
	Password string
	FullName *string
	Role     domain.Role
}

// ProvisioningService creates additional users under an existing company.
// It creates a principal without authenticating it: no session token is
// issued for the new user.
type ProvisioningService struct {
	users *repository.UsersRepository
}

// NewProvisioningService creates a new provisioning service.
func NewProvisioningService(users *repository.UsersRepository) *ProvisioningService {
	return &ProvisioningService{users: users}
}

// Provision creates a user scoped to the calling identity's company.
// Only admins may provision users; everyone else gets domain.ErrNotAdmin.
func (s *ProvisioningService) Provision(ctx context.Context, identity Identity, input ProvisionInput) (*domain.User, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}

	email := NormalizeEmail(input.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleSales
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// Advisory pre-check; the unique constraint decides.
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		CompanyID:    identity.CompanyID,
		Email:        email,
		PasswordHash: hash,
		FullName:     sanitizeOptionalName(input.FullName),
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, repository.ConstraintUsersEmail) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}
