package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Constraint names produced by the schema below. Insert paths match on
// these to turn database conflicts into domain errors.
const (
	ConstraintUsersEmail     = "users_email_key"
	ConstraintCompaniesGSTIN = "companies_gstin_key"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role_enum') THEN
			CREATE TYPE user_role_enum AS ENUM ('admin','sales','technical','pricing');
		END IF;

		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status_enum') THEN
			CREATE TYPE user_status_enum AS ENUM ('active','inactive','suspended');
		END IF;
	END $$`,

	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		legal_name TEXT NOT NULL,
		gstin VARCHAR(32) UNIQUE,
		domain VARCHAR(255),
		website VARCHAR(255),
		industry_category VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name VARCHAR(255),
		role user_role_enum NOT NULL DEFAULT 'admin',
		status user_status_enum NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_company_id ON users(company_id)`,
}

// Migrate creates the companies and users tables if they do not exist.
// Statements are idempotent, so running at every startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
