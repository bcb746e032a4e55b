package users

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/salesdock/tenant-idm/internal/http/middleware"
	"github.com/salesdock/tenant-idm/pkg/auth"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Handler wired with a nil-repository service: authorization and
// validation failures must be rejected before any store access.
func testHandler() *Handler {
	return NewHandler(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		auth.NewProvisioningService(nil),
	)
}

func requestWithIdentity(body string, role domain.Role) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	identity := auth.Identity{
		UserID:    uuid.New(),
		Email:     "caller@acme.test",
		Role:      role,
		CompanyID: uuid.New(),
	}
	return req.WithContext(middleware.WithIdentity(req.Context(), identity))
}

func TestSignup_NoIdentity(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSignup_NonAdminForbidden(t *testing.T) {
	handler := testHandler()

	req := requestWithIdentity(`{"email":"new@acme.test","password":"longenough1"}`, domain.RoleSales)
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid json",
			body:           `{invalid}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "missing fields",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email and password are required",
		},
		{
			name:           "invalid email",
			body:           `{"email":"nope","password":"longenough1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid email address",
		},
		{
			name:           "short password",
			body:           `{"email":"new@acme.test","password":"short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "password must be at least 8 characters long",
		},
		{
			name:           "unknown role",
			body:           `{"email":"new@acme.test","password":"longenough1","role":"owner"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid role",
		},
	}

	handler := testHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithIdentity(tt.body, domain.RoleAdmin)
			rec := httptest.NewRecorder()

			handler.Signup(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}

			var response map[string]string
			json.NewDecoder(rec.Body).Decode(&response)
			if response["error"] != tt.expectedError {
				t.Errorf("error = %q, want %q", response["error"], tt.expectedError)
			}
		})
	}
}
