package preferences

import (
	"net/http"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/prefs"
)

type Handler struct {
	mgr *prefs.Manager
}

func New(mgr *prefs.Manager) *Handler { return &Handler{mgr: mgr} }

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.mgr.Get())
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if !httpserver.Decode(w, r, &p) {
		return
	}
	if err := h.mgr.Set(p); err != nil {
		httpserver.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to persist preferences"})
		return
	}
	httpserver.JSON(w, http.StatusOK, p)
}

func (h *Handler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	p, err := h.mgr.ToggleSidebar()
	if err != nil {
		httpserver.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to persist preferences"})
		return
	}
	httpserver.JSON(w, http.StatusOK, p)
}
