package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// CompaniesRepository handles company persistence.
type CompaniesRepository struct {
	db *sql.DB
}

// NewCompaniesRepository creates a new companies repository.
func NewCompaniesRepository(db *sql.DB) *CompaniesRepository {
	return &CompaniesRepository{db: db}
}

// Create creates a new company.
func (r *CompaniesRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.CreateTx(ctx, r.db, company)
}

// CreateTx creates a new company within a transaction.
func (r *CompaniesRepository) CreateTx(ctx context.Context, q Querier, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, legal_name, gstin, domain, website, industry_category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.ExecContext(ctx, query,
		company.ID,
		company.LegalName,
		company.GSTIN,
		company.Domain,
		company.Website,
		company.IndustryCategory,
		company.CreatedAt,
		company.UpdatedAt,
	)
	return err
}

// GetByID retrieves a company by ID.
func (r *CompaniesRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `
		SELECT id, legal_name, gstin, domain, website, industry_category, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var company domain.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.LegalName,
		&company.GSTIN,
		&company.Domain,
		&company.Website,
		&company.IndustryCategory,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ExistsByGSTIN checks whether a company with the given GSTIN exists.
func (r *CompaniesRepository) ExistsByGSTIN(ctx context.Context, gstin string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE gstin = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, gstin).Scan(&exists)
	return exists, err
}
