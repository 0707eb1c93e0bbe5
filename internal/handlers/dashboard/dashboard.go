// Package dashboard serves the derived stats snapshot and the
// notification feed it raises alerts into.
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/httpctx"
	"facilityhub/internal/models"
	"facilityhub/internal/stats"
	"facilityhub/internal/store"
)

type Handler struct {
	reg *store.Registry
	agg *stats.Aggregator
}

func New(reg *store.Registry, agg *stats.Aggregator) *Handler {
	return &Handler{reg: reg, agg: agg}
}

// Stats returns the latest derived snapshot. It is recomputed on store
// change, not on request, so this is a cheap read.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.agg.Stats())
}

// Notifications lists the feed visible to the caller: broadcast entries
// plus entries addressed to them. Admins see everything.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	all := h.reg.Notifications.List()
	u, ok := httpctx.User(r.Context())
	if ok && u.Role == models.RoleAdmin {
		httpserver.JSON(w, http.StatusOK, all)
		return
	}
	out := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.UserID == uuid.Nil || (ok && n.UserID == u.ID) {
			out = append(out, n)
		}
	}
	httpserver.JSON(w, http.StatusOK, out)
}

// MarkRead flips a single notification to read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	read := true
	updated, err := h.reg.Notifications.Update(id, models.NotificationPatch{Read: &read})
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

// MarkAllRead flips every notification to read.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	read := true
	for _, n := range h.reg.Notifications.List() {
		if !n.Read {
			_, _ = h.reg.Notifications.Update(n.ID, models.NotificationPatch{Read: &read})
		}
	}
	httpserver.NoContent(w)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.reg.Notifications.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	httpserver.NoContent(w)
}

// ClearNotifications empties the feed.
func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.reg.Notifications.ReplaceAll(nil)
	httpserver.NoContent(w)
}
