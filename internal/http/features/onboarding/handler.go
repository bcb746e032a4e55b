package onboarding

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/salesdock/tenant-idm/internal/httputil"
	"github.com/salesdock/tenant-idm/pkg/auth"
	"github.com/salesdock/tenant-idm/pkg/domain"
)

// Handler handles new-tenant onboarding.
type Handler struct {
	logger       *slog.Logger
	onboarding   *auth.OnboardingService
	cookieConfig httputil.CookieConfig
}

// NewHandler creates a new onboarding handler.
func NewHandler(logger *slog.Logger, onboarding *auth.OnboardingService, cookieConfig httputil.CookieConfig) *Handler {
	return &Handler{
		logger:       logger,
		onboarding:   onboarding,
		cookieConfig: cookieConfig,
	}
}

// CompanyRequest is the tenant half of an onboarding request.
type CompanyRequest struct {
	LegalName        string  `json:"legalName"`
	GSTIN            *string `json:"gstin,omitempty"`
	Domain           *string `json:"domain,omitempty"`
	Website          *string `json:"website,omitempty"`
	IndustryCategory *string `json:"industryCategory,omitempty"`
}

// UserRequest is the first-user half of an onboarding request.
type UserRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role,omitempty"`
}

// OnboardRequest represents an onboarding request.
type OnboardRequest struct {
	Company *CompanyRequest `json:"company"`
	User    *UserRequest    `json:"user"`
}

// CompanyResponse represents a created company. Mirrors the stored record.
type CompanyResponse struct {
	ID               string    `json:"id"`
	LegalName        string    `json:"legalName"`
	GSTIN            *string   `json:"gstin,omitempty"`
	Domain           *string   `json:"domain,omitempty"`
	Website          *string   `json:"website,omitempty"`
	IndustryCategory *string   `json:"industryCategory,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserResponse represents a created user. The password hash is never
// serialized.
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OnboardResponse represents a successful onboarding.
type OnboardResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}

// NewCompanyResponse converts a domain company to its response form.
func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:               c.ID.String(),
		LegalName:        c.LegalName,
		GSTIN:            c.GSTIN,
		Domain:           c.Domain,
		Website:          c.Website,
		IndustryCategory: c.IndustryCategory,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// NewUserResponse converts a domain user to its response form.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Onboard handles new-tenant creation.
// POST /onboarding
func (h *Handler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Company == nil || req.User == nil {
		httputil.Error(w, http.StatusBadRequest, "both company and user objects are required")
		return
	}
	if req.User.Email == "" || req.User.Password == "" {
		httputil.Error(w, http.StatusBadRequest, "user email and password are required")
		return
	}

	result, err := h.onboarding.Onboard(r.Context(),
		auth.OnboardCompany{
			LegalName:        req.Company.LegalName,
			GSTIN:            req.Company.GSTIN,
			Domain:           req.Company.Domain,
			Website:          req.Company.Website,
			IndustryCategory: req.Company.IndustryCategory,
		},
		auth.OnboardUser{
			FullName: req.User.FullName,
			Email:    req.User.Email,
			Password: req.User.Password,
			Role:     domain.Role(req.User.Role),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLegalNameRequired),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrWeakPassword),
			errors.Is(err, domain.ErrInvalidRole):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrGSTINTaken):
			httputil.Error(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("onboarding failed", "error", err)
			httputil.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	httputil.SetSessionCookie(w, result.Token, h.cookieConfig)
	httputil.JSON(w, http.StatusCreated, OnboardResponse{
		Company: NewCompanyResponse(result.Company),
		User:    NewUserResponse(result.User),
	})
}
