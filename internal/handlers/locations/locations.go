// Package locations serves the reference hierarchy: locations, their
// buildings and the departments inside them. References are by id only;
// deleting a location does not cascade.
package locations

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
	httpserver.JSON(w, http.StatusOK, h.reg.Locations.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	l, ok := h.reg.Locations.Get(id)
	if !ok {
		httpserver.Error(w, models.ErrNotFound, "lookup failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, l)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var l models.Location
	if !httpserver.Decode(w, r, &l) {
		return
	}
	if l.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	l.ID = uuid.New()
	l.CreatedAt = time.Now()

	created, err := h.reg.Locations.Add(l)
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
	var patch models.LocationPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	updated, err := h.reg.Locations.Update(id, patch)
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
	if err := h.reg.Locations.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	httpserver.NoContent(w)
}

// Buildings

func (h *Handler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.reg.Buildings.List())
}

func (h *Handler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	var b models.Building
	if !httpserver.Decode(w, r, &b) {
		return
	}
	if b.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()

	created, err := h.reg.Buildings.Add(b)
	if err != nil {
		httpserver.Error(w, err, "create failed")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch models.BuildingPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	updated, err := h.reg.Buildings.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.reg.Buildings.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	httpserver.NoContent(w)
}

// Departments

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.reg.Departments.List())
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var d models.Department
	if !httpserver.Decode(w, r, &d) {
		return
	}
	if d.Name == "" {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	d.ID = uuid.New()
	d.CreatedAt = time.Now()

	created, err := h.reg.Departments.Add(d)
	if err != nil {
		httpserver.Error(w, err, "create failed")
		return
	}
	httpserver.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch models.DepartmentPatch
	if !httpserver.Decode(w, r, &patch) {
		return
	}
	updated, err := h.reg.Departments.Update(id, patch)
	if err != nil {
		httpserver.Error(w, err, "update failed")
		return
	}
	httpserver.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.reg.Departments.Delete(id); err != nil {
		httpserver.Error(w, err, "delete failed")
		return
	}
	httpserver.NoContent(w)
}
