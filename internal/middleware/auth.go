package middleware

import (
	"net/http"

	"facilityhub/internal/auth"
	"facilityhub/internal/session"
	"facilityhub/internal/store"
)

// RequireAuth authenticates using the "session" cookie, then loads the
// user by Session.UserID from the user store and injects both session and
// user into the context.
func RequireAuth(reg *store.Registry, sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s := auth.ReadSession(req, sessions)
			if s == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, ok := reg.Users.Get(s.UserID)
			if !ok {
				// User deleted since login; the session is dead weight.
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.WithSession(req.Context(), s)
			ctx = auth.WithUser(ctx, &user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
