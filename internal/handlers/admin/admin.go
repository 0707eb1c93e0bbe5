package admin

import (
	"net/http"
	"time"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/session"
)

// ListSessionsHandler returns JSON of active sessions. Session ids are
// opaque but still bearer credentials, so the route is gated behind the
// admin-only permission in the router.
func ListSessionsHandler(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		type item struct {
			ID        string    `json:"id"`
			UserID    string    `json:"user_id"`
			Role      string    `json:"role"`
			ExpiresAt time.Time `json:"expires_at"`
		}
		entries := sessions.List()
		out := make([]item, 0, len(entries))
		for _, e := range entries {
			out = append(out, item{
				ID:        e.ID,
				UserID:    e.Session.UserID.String(),
				Role:      string(e.Session.Role),
				ExpiresAt: e.Session.Expiry,
			})
		}
		httpserver.JSON(w, http.StatusOK, out)
	}
}
