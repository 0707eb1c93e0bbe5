// internal/auth/handlers.go
package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"facilityhub/internal/models"
	"facilityhub/internal/permissions"
	"facilityhub/internal/session"
)

// SessionTTL is how long a login stays valid without re-authenticating.
var SessionTTL = 8 * time.Hour

// ---------- Public handlers (mount under /auth) ----------

// POST /auth/login
// Body: { "email": "...", "password": "..." }
func LoginHandler(dir *Directory, holder *Holder, sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		user, err := dir.Authenticate(body.Email, body.Password)
		if err != nil {
			// One generic answer for unknown email and wrong secret alike.
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error":   "invalid_credentials",
				"message": "Invalid credentials",
			})
			slog.Info("login rejected", "email", body.Email)
			return
		}

		holder.Login(user)
		SetSessionCookie(w, sessions, models.Session{
			UserID: user.ID,
			Role:   user.Role,
			Expiry: time.Now().Add(SessionTTL),
		})
		slog.Info("login ok", "user_id", user.ID.String(), "role", string(user.Role))
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
	}
}

// POST /auth/logout
func LogoutHandler(holder *Holder, sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		// Best-effort delete server-side session
		if c, err := req.Cookie("session"); err == nil && c.Value != "" {
			sessions.Delete(c.Value)
		}
		holder.Logout()
		ClearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /auth/me — current identity plus its resolved permission set, so the
// view layer can decide what to render without a round trip per action.
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		u, ok := UserFromContext(req.Context())
		if !ok || u == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user":        u,
			"permissions": permissions.For(u.Role),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
