package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

func adminIdentity() Identity {
	return Identity{
		UserID:    uuid.New(),
		Email:     "admin@acme.test",
		Role:      domain.RoleAdmin,
		CompanyID: uuid.New(),
	}
}

// Authorization and validation both run before any store access, so these
// use a service wired with a nil repository.
func TestProvision_NonAdminForbidden(t *testing.T) {
	svc := NewProvisioningService(nil)

	for _, role := range []domain.Role{domain.RoleSales, domain.RoleTechnical, domain.RolePricing} {
		t.Run(string(role), func(t *testing.T) {
			identity := adminIdentity()
			identity.Role = role

			_, err := svc.Provision(context.Background(), identity, ProvisionInput{
				Email:    "new@acme.test",
				Password: "longenough1",
			})
			if !errors.Is(err, domain.ErrNotAdmin) {
				t.Errorf("Provision() error = %v, want domain.ErrNotAdmin", err)
			}
		})
	}
}

func TestProvision_ValidationBeforeStore(t *testing.T) {
	svc := NewProvisioningService(nil)

	tests := []struct {
		name    string
		input   ProvisionInput
		wantErr error
	}{
		{
			name:    "invalid email",
			input:   ProvisionInput{Email: "nope", Password: "longenough1"},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "short password",
			input:   ProvisionInput{Email: "new@acme.test", Password: "short"},
			wantErr: domain.ErrWeakPassword,
		},
		{
			name:    "unknown role",
			input:   ProvisionInput{Email: "new@acme.test", Password: "longenough1", Role: "owner"},
			wantErr: domain.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Provision(context.Background(), adminIdentity(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Provision() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
