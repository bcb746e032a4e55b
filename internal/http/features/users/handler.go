package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/salesdock/tenant-idm/internal/http/features/onboarding"
	"github.com/salesdock/tenant-idm/internal/http/middleware"
	"github.com/salesdock/tenant-idm/internal/httputil"
	"github.com/salesdock/tenant-idm/pkg/auth"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Handler handles admin-gated user provisioning.
type Handler struct {
	logger       *slog.Logger
	provisioning *auth.ProvisioningService
}

// NewHandler creates a new users handler.
func NewHandler(logger *slog.Logger, provisioning *auth.ProvisioningService) *Handler {
	return &Handler{
		logger:       logger,
		provisioning: provisioning,
	}
}

// SignupRequest represents a user provisioning request.
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
	Role     string  `json:"role,omitempty"`
}

// SignupResponse represents a successful provisioning.
type SignupResponse struct {
	User onboarding.UserResponse `json:"user"`
}

// Signup creates an additional user under the caller's company. The new
// user is created without a session: this provisions a principal, it does
// not authenticate one.
// POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.provisioning.Provision(r.Context(), identity, auth.ProvisionInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAdmin):
			httputil.Error(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrWeakPassword),
			errors.Is(err, domain.ErrInvalidRole):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailTaken):
			httputil.Error(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("user provisioning failed", "error", err)
			httputil.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httputil.JSON(w, http.StatusCreated, SignupResponse{
		User: onboarding.NewUserResponse(user),
	})
}
