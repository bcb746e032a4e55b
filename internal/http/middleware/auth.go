package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/salesdock/tenant-idm/internal/httputil"
	"github.com/salesdock/tenant-idm/pkg/auth"
)

type contextKey string

// IdentityKey is the context key for the authenticated identity.
const IdentityKey contextKey = "identity"

// Auth creates middleware that validates the session cookie and exposes
// the decoded Identity to downstream handlers. The token is the sole
// source of truth: no database lookup happens here, so a deleted or
// demoted user stays valid until the token expires.
//
// Every failure produces the same generic 401; the cryptographic reason
// is logged, never disclosed.
func Auth(sessions *auth.SessionService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := httputil.GetSessionTokenFromCookie(r)
			if !ok {
				httputil.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil {
				logger.Info("session verification failed", "error", err, "path", r.URL.Path)
				httputil.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			identity, err := claims.Identity()
			if err != nil {
				logger.Info("session claims malformed", "error", err, "path", r.URL.Path)
				httputil.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from the request context.
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(auth.Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the given identity. Intended for
// tests and internal calls that bypass the HTTP middleware.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}
