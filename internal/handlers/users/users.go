package users

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/models"
	"facilityhub/internal/session"
	"facilityhub/internal/store"
)

type Handler struct {
	reg      *store.Registry
	sessions *session.Store
}

func New(reg *store.Registry, sessions *session.Store) *Handler {
	return &Handler{reg: reg, sessions: sessions}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.reg.Users.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	u, ok := h.reg.Users.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, u)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if !httpserver.Decode(w, r, &u) {
		return
	}
	if u.Name == "" || u.Email == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name and email are required"})
		return
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range h.reg.Users.List() {
		if strings.EqualFold(existing.Email, u.Email) {
			httpserver.JSON(w, http.StatusConflict, map[string]string{"error": "email already in use"})
			return
		}
	}

	now := time.Now()
	u.ID = uuid.New()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleViewer
	}

	created, err := h.reg.Users.Add(u)
	if err != nil {
		httpserver.Error(w, err, "create failed")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

// Update shallow-merges the patch. A role change invalidates the user's
// live sessions so the old permission set dies with them.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch models.UserPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	now := time.Now()
	patch.UpdatedAt = &now

	roleChanged := false
	if patch.Role != nil {
		if existing, ok := h.reg.Users.Get(id); ok && existing.Role != *patch.Role {
			roleChanged = true
		}
	}

	updated, err := h.reg.Users.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	if roleChanged {
		h.sessions.DeleteForUser(id)
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.reg.Users.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	h.sessions.DeleteForUser(id)
	httpserver.NoContent(w)
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID *uuid.UUID `json:"id"`
	}
	if !httpserver.Decode(w, r, &body) {
		return
	}
	id := uuid.Nil
	if body.ID != nil {
		id = *body.ID
	}
	if err := h.reg.Users.Select(id); err != nil {
		httpserver.Error(w, err, "select failed")
		return
	}
	httpserver.NoContent(w)
}

func (h *Handler) Selected(w http.ResponseWriter, r *http.Request) {
	u, ok := h.reg.Users.Selected()
	if !ok {
		httpserver.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"selected": u})
}
