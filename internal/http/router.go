package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesdock/tenant-idm/internal/config"
	"github.com/salesdock/tenant-idm/internal/http/features/me"
	"github.com/salesdock/tenant-idm/internal/http/features/onboarding"
	"github.com/salesdock/tenant-idm/internal/http/features/session"
	"github.com/salesdock/tenant-idm/internal/http/features/users"
	"github.com/salesdock/tenant-idm/internal/http/middleware"
	"github.com/salesdock/tenant-idm/internal/httputil"
	"github.com/salesdock/tenant-idm/pkg/auth"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger              *slog.Logger
	OnboardingService   *auth.OnboardingService
	PasswordService     *auth.PasswordService
	SessionService      *auth.SessionService
	ProvisioningService *auth.ProvisioningService
	RateLimitConfig     config.RateLimitConfig
	SecurityHeaders     config.SecurityHeadersConfig
	MaxRequestBodySize  int64
	CookieSecure        bool
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestBodySize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	rateLimiters := middleware.CreateRateLimiters(cfg.RateLimitConfig, cfg.Logger)

	cookieConfig := httputil.CookieConfig{
		Path:   "/",
		Secure: cfg.CookieSecure,
	}

	onboardingHandler := onboarding.NewHandler(cfg.Logger, cfg.OnboardingService, cookieConfig)
	sessionHandler := session.NewHandler(cfg.Logger, cfg.PasswordService, cfg.SessionService, cookieConfig)
	usersHandler := users.NewHandler(cfg.Logger, cfg.ProvisioningService)
	meHandler := me.NewHandler()

	// Unauthenticated credential endpoints
	r.Group(func(r chi.Router) {
		r.Use(rateLimiters["auth"])
		r.Post("/onboarding", onboardingHandler.Onboard)
		r.Post("/signin", sessionHandler.Signin)
	})

	// Signout works with or without a valid session
	r.Post("/signout", sessionHandler.Signout)

	// Admin-gated provisioning
	r.Group(func(r chi.Router) {
		r.Use(rateLimiters["auth"])
		r.Use(middleware.Auth(cfg.SessionService, cfg.Logger))
		r.Use(middleware.RequireAdmin())
		r.Post("/signup", usersHandler.Signup)
	})

	// Authenticated identity
	r.Group(func(r chi.Router) {
		r.Use(rateLimiters["profile"])
		r.Use(middleware.Auth(cfg.SessionService, cfg.Logger))
		r.Get("/me", meHandler.GetMe)
	})

	return r
}
