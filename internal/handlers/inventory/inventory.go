// Package inventory serves the spare-part collection, including the
// low-stock view the dashboard links to.
package inventory

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
	httpserver.JSON(w, http.StatusOK, h.reg.SpareParts.List())
}

// LowStock lists parts at or below their minimum stock.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	out := make([]models.SparePart, 0)
	for _, p := range h.reg.SpareParts.List() {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	httpserver.JSON(w, http.StatusOK, out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	p, ok := h.reg.SpareParts.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.SparePart
	if !httpserver.Decode(w, r, &p) {
		return
	}
	if p.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	now := time.Now()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Category == "" {
		p.Category = models.PartGeneral
	}

	created, err := h.reg.SpareParts.Add(p)
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
	var patch models.SparePartPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	now := time.Now()
	patch.UpdatedAt = &now

	updated, err := h.reg.SpareParts.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

// Restock bumps the current stock and stamps LastRestocked.
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !httpserver.Decode(w, r, &body) {
		return
	}
	if body.Quantity <= 0 {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be positive"})
		return
	}
	existing, ok := h.reg.SpareParts.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}

	now := time.Now()
	stock := existing.CurrentStock + body.Quantity
	patch := models.SparePartPatch{
		CurrentStock:  &stock,
		LastRestocked: &now,
		UpdatedAt:     &now,
	}
	updated, err := h.reg.SpareParts.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "restock failed")
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
	if err := h.reg.SpareParts.Delete(id); err != nil {
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
	if err := h.reg.SpareParts.Select(id); err != nil {
		httpserver.Error(w, err, "select failed")
		return
	}
	httpserver.NoContent(w)
}

func (h *Handler) Selected(w http.ResponseWriter, r *http.Request) {
	p, ok := h.reg.SpareParts.Selected()
	if !ok {
		httpserver.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"selected": p})
}
