package me

import (
	"net/http"

	"github.com/salesdock/tenant-idm/internal/http/middleware"
	"github.com/salesdock/tenant-idm/internal/httputil"
)

// Handler returns the authenticated identity.
type Handler struct{}

// NewHandler creates a new me handler.
func NewHandler() *Handler {
	return &Handler{}
}

// IdentityResponse represents the authenticated identity as embedded in
// the session token.
type IdentityResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
}

// MeResponse represents the /me response.
type MeResponse struct {
	Identity IdentityResponse `json:"identity"`
}

// GetMe returns the identity decoded from the session token. No database
// lookup happens: the response reflects the claims at mint time even if
// the underlying user row has since changed or been deleted.
// GET /me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	httputil.JSON(w, http.StatusOK, MeResponse{
		Identity: IdentityResponse{
			ID:        identity.UserID.String(),
			Email:     identity.Email,
			Role:      string(identity.Role),
			CompanyID: identity.CompanyID.String(),
		},
	})
}
