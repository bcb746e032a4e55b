package middleware

import (
	"net/http"

	"github.com/salesdock/tenant-idm/internal/httputil"
)

// RequireAdmin creates middleware that rejects non-admin identities.
// Must run after Auth.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				httputil.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if !identity.IsAdmin() {
				httputil.Error(w, http.StatusForbidden, "only admins can perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
