package scheduler

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
	httpserver.JSON(w, http.StatusOK, h.reg.Tasks.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	t, ok := h.reg.Tasks.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, t)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.ScheduledTask
	if !httpserver.Decode(w, r, &t) {
		return
	}
	if t.Title == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}
	// Recurring tasks must carry a frequency; one-time tasks must not.
	if t.Type == models.TaskRecurring && t.Frequency == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "recurring tasks require a frequency"})
		return
	}
	if t.Type == models.TaskOneTime {
		t.Frequency = ""
	}

	now := time.Now()
	t.ID = uuid.New()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Type == "" {
		t.Type = models.TaskOneTime
	}
	if t.Status == "" {
		t.Status = models.TaskScheduled
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.StartDate.IsZero() {
		t.StartDate = now
	}

	created, err := h.reg.Tasks.Add(t)
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
	var patch models.ScheduledTaskPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	now := time.Now()
	patch.UpdatedAt = &now

	updated, err := h.reg.Tasks.Update(id, patch)
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
	if err := h.reg.Tasks.Delete(id); err != nil {
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
	if err := h.reg.Tasks.Select(id); err != nil {
		httpserver.Error(w, err, "select failed")
		return
	}
	httpserver.NoContent(w)
}

func (h *Handler) Selected(w http.ResponseWriter, r *http.Request) {
	t, ok := h.reg.Tasks.Selected()
	if !ok {
		httpserver.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{"selected": t})
}
