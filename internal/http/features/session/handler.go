package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/salesdock/tenant-idm/internal/http/features/onboarding"
	"github.com/salesdock/tenant-idm/internal/httputil"
	"github.com/salesdock/tenant-idm/pkg/auth"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Handler handles signin and signout.
type Handler struct {
	logger       *slog.Logger
	passwords    *auth.PasswordService
	sessions     *auth.SessionService
	cookieConfig httputil.CookieConfig
}

// NewHandler creates a new session handler.
func NewHandler(logger *slog.Logger, passwords *auth.PasswordService, sessions *auth.SessionService, cookieConfig httputil.CookieConfig) *Handler {
	return &Handler{
		logger:       logger,
		passwords:    passwords,
		sessions:     sessions,
		cookieConfig: cookieConfig,
	}
}

// SigninRequest represents a signin request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninResponse represents a successful signin.
type SigninResponse struct {
	User onboarding.UserResponse `json:"user"`
}

// Signin handles credential login and session issuance.
// POST /signin
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.passwords.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("signin failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := h.sessions.Mint(user)
	if err != nil {
		h.logger.Error("failed to mint session token", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.SetSessionCookie(w, token, h.cookieConfig)
	httputil.JSON(w, http.StatusOK, SigninResponse{
		User: onboarding.NewUserResponse(user),
	})
}

// Signout clears the session cookie. The token itself cannot be invalidated
// server-side; this transition is purely client-observable.
// POST /signout
func (h *Handler) Signout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearSessionCookie(w, h.cookieConfig)
	httputil.JSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}
