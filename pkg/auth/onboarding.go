package auth

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/pkg/domain"
	"github.com/salesdock/tenant-idm/pkg/repository"
)

// OnboardCompany is the tenant half of an onboarding request.
type OnboardCompany struct {
	LegalName        string
	GSTIN            *string
	Domain           *string
	Website          *string
	IndustryCategory *string
}

// OnboardUser is the first-user half of an onboarding request.
type OnboardUser struct {
	FullName *string
	Email    string
	Password string
	Role     domain.Role
}

// OnboardResult holds the records created by a successful onboarding,
// plus a freshly minted session token for the new user.
type OnboardResult struct {
	Company *domain.Company
	User    *domain.User
	Token   string
}

// OnboardingService creates a new tenant: a company and its first user,
// atomically. This is the only code path that creates companies.
type OnboardingService struct {
	db        *sql.DB
	companies *repository.CompaniesRepository
	users     *repository.UsersRepository
	sessions  *SessionService
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(db *sql.DB, companies *repository.CompaniesRepository, users *repository.UsersRepository, sessions *SessionService) *OnboardingService {
	return &OnboardingService{
		db:        db,
		companies: companies,
		users:     users,
		sessions:  sessions,
	}
}

// Onboard creates a company and its first user in a single transaction.
// Validation runs before any store access. The pre-insert uniqueness checks
// are a best-effort fast path for friendlier errors; the unique constraints
// hit at insert time are the authoritative conflict signal.
func (s *OnboardingService) Onboard(ctx context.Context, company OnboardCompany, user OnboardUser) (*OnboardResult, error) {
	if strings.TrimSpace(company.LegalName) == "" {
		return nil, domain.ErrLegalNameRequired
	}

	email := NormalizeEmail(user.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(user.Password); err != nil {
		return nil, err
	}

	role := user.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	gstin := normalizeOptional(company.GSTIN)

	// Advisory pre-checks; concurrent onboarding can still race past these.
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}
	if gstin != nil {
		exists, err := s.companies.ExistsByGSTIN(ctx, *gstin)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrGSTINTaken
		}
	}

	hash, err := HashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newCompany := &domain.Company{
		ID:               uuid.New(),
		LegalName:        strings.TrimSpace(company.LegalName),
		GSTIN:            gstin,
		Domain:           normalizeOptional(company.Domain),
		Website:          normalizeOptional(company.Website),
		IndustryCategory: normalizeOptional(company.IndustryCategory),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	newUser := &domain.User{
		ID:           uuid.New(),
		CompanyID:    newCompany.ID,
		Email:        email,
		PasswordHash: hash,
		FullName:     sanitizeOptionalName(user.FullName),
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = repository.Tx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.companies.CreateTx(ctx, tx, newCompany); err != nil {
			return err
		}
		return s.users.CreateTx(ctx, tx, newUser)
	})
	if err != nil {
		switch {
		case repository.IsUniqueViolation(err, repository.ConstraintUsersEmail):
			return nil, domain.ErrEmailTaken
		case repository.IsUniqueViolation(err, repository.ConstraintCompaniesGSTIN):
			return nil, domain.ErrGSTINTaken
		}
		return nil, err
	}

	token, err := s.sessions.Mint(newUser)
	if err != nil {
		return nil, err
	}

	return &OnboardResult{
		Company: newCompany,
		User:    newUser,
		Token:   token,
	}, nil
}

// normalizeOptional trims an optional field, mapping empty to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// sanitizeOptionalName sanitizes an optional name field, mapping empty to nil.
func sanitizeOptionalName(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := SanitizeName(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
