package workorders

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpserver "facilityhub/internal/http"
	"facilityhub/internal/httpctx"
	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

type Handler struct {
	reg *store.Registry
}

func New(reg *store.Registry) *Handler { return &Handler{reg: reg} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.reg.WorkOrders.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	wo, ok := h.reg.WorkOrders.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, wo)
}

// Create mints the id and stamps timestamps server-side; whatever the
// client sent for those fields is discarded.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var wo models.WorkOrder
	if !httpserver.Decode(w, r, &wo) {
		return
	}
	if wo.Title == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	now := time.Now()
	wo.ID = uuid.New()
	wo.CreatedAt = now
	wo.UpdatedAt = now
	wo.CompletedAt = nil
	if wo.Status == "" {
		wo.Status = models.WorkOrderPending
	}
	if wo.Priority == "" {
		wo.Priority = models.PriorityMedium
	}
	if wo.Completed() {
		wo.CompletedAt = &now
	}
	if uid, ok := httpctx.UserID(r.Context()); ok {
		wo.CreatedBy = uid
	}

	created, err := h.reg.WorkOrders.Add(wo)
	if err != nil {
		httpserver.Error(w, err, "create failed")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

// Update shallow-merges the patch. A status change into Done or Closed
// stamps CompletedAt once; later edits never move it.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch models.WorkOrderPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}

	now := time.Now()
	patch.UpdatedAt = &now
	if patch.Status != nil && patch.CompletedAt == nil {
		if existing, ok := h.reg.WorkOrders.Get(id); ok && existing.CompletedAt == nil {
			done := *patch.Status == models.WorkOrderDone || *patch.Status == models.WorkOrderClosed
			if done {
				patch.CompletedAt = &now
			}
		}
	}

	updated, err := h.reg.WorkOrders.Update(id, patch)
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
	if err := h.reg.WorkOrders.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	httpserver.NoContent(w)
}

// Select sets the focused work order for detail views; a null id clears it.
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
	if err := h.reg.WorkOrders.Select(id); err != nil {
		httpserver.Error(w, err, "select failed")
		return
	}
	httpserver.NoContent(w)
}

func (h *Handler) Selected(w http.ResponseWriter, r *http.Request) {
	wo, ok := h.reg.WorkOrders.Selected()
	if !ok {
		httpserver.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"selected": wo})
}
