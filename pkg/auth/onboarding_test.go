package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Validation failures must be detected before any store access, so these
// run against a service wired with nil repositories: touching the store
// would panic and fail the test.
func TestOnboard_ValidationBeforeStore(t *testing.T) {
	svc := NewOnboardingService(nil, nil, nil, nil)

	validCompany := OnboardCompany{LegalName: "Acme Industries"}
	validUser := OnboardUser{Email: "owner@acme.test", Password: "longenough1"}

	tests := []struct {
		name    string
		company OnboardCompany
		user    OnboardUser
		wantErr error
	}{
		{
			name:    "missing legal name",
			company: OnboardCompany{},
			user:    validUser,
			wantErr: domain.ErrLegalNameRequired,
		},
		{
			name:    "whitespace legal name",
			company: OnboardCompany{LegalName: "   "},
			user:    validUser,
			wantErr: domain.ErrLegalNameRequired,
		},
		{
			name:    "invalid email",
			company: validCompany,
			user:    OnboardUser{Email: "not-an-email", Password: "longenough1"},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "missing email",
			company: validCompany,
			user:    OnboardUser{Password: "longenough1"},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "short password",
			company: validCompany,
			user:    OnboardUser{Email: "owner@acme.test", Password: "short"},
			wantErr: domain.ErrWeakPassword,
		},
		{
			name:    "unknown role",
			company: validCompany,
			user:    OnboardUser{Email: "owner@acme.test", Password: "longenough1", Role: "superuser"},
			wantErr: domain.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Onboard(context.Background(), tt.company, tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Onboard() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeOptional(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strPtr(""), nil},
		{"whitespace becomes nil", strPtr("   "), nil},
		{"trimmed", strPtr("  acme.test  "), strPtr("acme.test")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeOptional(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("normalizeOptional() = %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("normalizeOptional() = nil, want %q", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("normalizeOptional() = %q, want %q", *got, *tt.want)
			}
		})
	}
}
