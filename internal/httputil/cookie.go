package httputil

import (
	"net/http"
	"time"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "session_token"

// SessionCookieMaxAge is the cookie lifetime. It is deliberately longer
// than the signed claim's expiry: a cookie may outlive a usable token,
// which then simply fails verification.
const SessionCookieMaxAge = 7 * 24 * time.Hour

// CookieConfig holds session cookie configuration.
type CookieConfig struct {
	Path   string
	Secure bool // true in production-equivalent deployments (HTTPS)
}

// DefaultCookieConfig returns default cookie configuration.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		Path:   "/",
		Secure: false,
	}
}

// SetSessionCookie sets the HttpOnly, SameSite=Strict session cookie.
func SetSessionCookie(w http.ResponseWriter, token string, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     cfg.Path,
		MaxAge:   int(SessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie clears the session cookie.
func ClearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     cfg.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetSessionTokenFromCookie extracts the session token from the request.
func GetSessionTokenFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
