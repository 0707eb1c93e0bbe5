// internal/middleware/require_permission.go
package middleware

import (
	"net/http"

	"facilityhub/internal/auth"
	"facilityhub/internal/permissions"
)

// RequirePermission gates a route on the resolved permission set of the
// authenticated user's role. The check lives here, on the mutator path,
// rather than as a convention the caller is trusted to remember; a caller
// that skips the UI-side check still gets a 403.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			u, ok := auth.UserFromContext(req.Context())
			if !ok || u == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !permissions.Has(u.Role, permission) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"permission_denied"}`))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
