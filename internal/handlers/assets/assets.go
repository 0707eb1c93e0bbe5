package assets

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

type Handler struct {
	reg *store.Registry
}

func New(reg *store.Registry) *Handler { return &Handler{reg: reg} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.reg.Assets.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	a, ok := h.reg.Assets.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, a)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if !httpserver.Decode(w, r, &a) {
		return
	}
	if a.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	now := time.Now()
	a.ID = uuid.New()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = models.AssetActive
	}

	created, err := h.reg.Assets.Add(a)
	if err != nil {
		httpserver.Error(w, err, "create failed")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch models.AssetPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	now := time.Now()
	patch.UpdatedAt = &now

	updated, err := h.reg.Assets.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.reg.Assets.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
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
	if err := h.reg.Assets.Select(id); err != nil {
		httpserver.Error(w, err, "select failed")
		return
	}
	httpserver.NoContent(w)
}

func (h *Handler) Selected(w http.ResponseWriter, r *http.Request) {
	a, ok := h.reg.Assets.Selected()
	if !ok {
		httpserver.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"selected": a})
}
