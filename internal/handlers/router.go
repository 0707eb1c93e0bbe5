// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"facilityhub/internal/handlers/admin"
	"facilityhub/internal/handlers/assets"
	"facilityhub/internal/handlers/dashboard"
	"facilityhub/internal/handlers/inventory"
	"facilityhub/internal/handlers/locations"
	"facilityhub/internal/handlers/preferences"
	"facilityhub/internal/handlers/scheduler"
	"facilityhub/internal/handlers/users"
	"facilityhub/internal/handlers/workorders"
	"facilityhub/internal/middleware"
	"facilityhub/internal/permissions"
	"facilityhub/internal/prefs"
	"facilityhub/internal/session"
	"facilityhub/internal/stats"
	"facilityhub/internal/store"
)

// RegisterRoutes mounts every resource behind authentication plus the
// permission its role table names. Read routes use the view permission,
// mutations their own verb, so a Viewer can browse everything and change
// nothing.
func RegisterRoutes(mux *chi.Mux, reg *store.Registry, sessions *session.Store, agg *stats.Aggregator, prefMgr *prefs.Manager) {
	wo := workorders.New(reg)
	as := assets.New(reg)
	inv := inventory.New(reg)
	sch := scheduler.New(reg)
	u := users.New(reg, sessions)
	loc := locations.New(reg)
	dash := dashboard.New(reg, agg)
	pref := preferences.New(prefMgr)

	mux.Route("/work-orders", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.WorkOrdersView)).Get("/", wo.List)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersView)).Get("/selected", wo.Selected)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersView)).Put("/selected", wo.Select)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersView)).Get("/{id}", wo.Get)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersCreate)).Post("/", wo.Create)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersEdit)).Patch("/{id}", wo.Update)
		sr.With(middleware.RequirePermission(permissions.WorkOrdersEdit)).Delete("/{id}", wo.Delete)
	})

	mux.Route("/assets", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/", as.List)
		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/selected", as.Selected)
		sr.With(middleware.RequirePermission(permissions.AssetsView)).Put("/selected", as.Select)
		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/{id}", as.Get)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Post("/", as.Create)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Patch("/{id}", as.Update)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Delete("/{id}", as.Delete)
	})

	mux.Route("/spare-parts", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.InventoryView)).Get("/", inv.List)
		sr.With(middleware.RequirePermission(permissions.InventoryView)).Get("/low-stock", inv.LowStock)
		sr.With(middleware.RequirePermission(permissions.InventoryView)).Get("/selected", inv.Selected)
		sr.With(middleware.RequirePermission(permissions.InventoryView)).Put("/selected", inv.Select)
		sr.With(middleware.RequirePermission(permissions.InventoryView)).Get("/{id}", inv.Get)
		sr.With(middleware.RequirePermission(permissions.InventoryEdit)).Post("/", inv.Create)
		sr.With(middleware.RequirePermission(permissions.InventoryEdit)).Patch("/{id}", inv.Update)
		sr.With(middleware.RequirePermission(permissions.InventoryEdit)).Post("/{id}/restock", inv.Restock)
		sr.With(middleware.RequirePermission(permissions.InventoryEdit)).Delete("/{id}", inv.Delete)
	})

	mux.Route("/scheduled-tasks", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.SchedulerView)).Get("/", sch.List)
		sr.With(middleware.RequirePermission(permissions.SchedulerView)).Get("/selected", sch.Selected)
		sr.With(middleware.RequirePermission(permissions.SchedulerView)).Put("/selected", sch.Select)
		sr.With(middleware.RequirePermission(permissions.SchedulerView)).Get("/{id}", sch.Get)
		sr.With(middleware.RequirePermission(permissions.SchedulerCreate)).Post("/", sch.Create)
		sr.With(middleware.RequirePermission(permissions.SchedulerEdit)).Patch("/{id}", sch.Update)
		sr.With(middleware.RequirePermission(permissions.SchedulerEdit)).Delete("/{id}", sch.Delete)
	})

	mux.Route("/users", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.ManpowerView)).Get("/", u.List)
		sr.With(middleware.RequirePermission(permissions.ManpowerView)).Get("/selected", u.Selected)
		sr.With(middleware.RequirePermission(permissions.ManpowerView)).Put("/selected", u.Select)
		sr.With(middleware.RequirePermission(permissions.ManpowerView)).Get("/{id}", u.Get)
		sr.With(middleware.RequirePermission(permissions.ManpowerEdit)).Post("/", u.Create)
		sr.With(middleware.RequirePermission(permissions.ManpowerEdit)).Patch("/{id}", u.Update)
		sr.With(middleware.RequirePermission(permissions.ManpowerEdit)).Delete("/{id}", u.Delete)
	})

	// Locations, buildings and departments are reference data maintained by
	// whoever can edit assets.
	mux.Route("/locations", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/", loc.List)
		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/{id}", loc.Get)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Post("/", loc.Create)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Patch("/{id}", loc.Update)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Delete("/{id}", loc.Delete)
	})

	mux.Route("/buildings", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/", loc.ListBuildings)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Post("/", loc.CreateBuilding)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Patch("/{id}", loc.UpdateBuilding)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Delete("/{id}", loc.DeleteBuilding)
	})

	mux.Route("/departments", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.AssetsView)).Get("/", loc.ListDepartments)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Post("/", loc.CreateDepartment)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Patch("/{id}", loc.UpdateDepartment)
		sr.With(middleware.RequirePermission(permissions.AssetsEdit)).Delete("/{id}", loc.DeleteDepartment)
	})

	mux.Route("/dashboard", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.With(middleware.RequirePermission(permissions.AnalyticsView)).Get("/stats", dash.Stats)
	})

	// The notification feed is visible to every authenticated user; the
	// handler scopes entries to the caller.
	mux.Route("/notifications", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.Get("/", dash.Notifications)
		sr.Patch("/{id}/read", dash.MarkRead)
		sr.Post("/read-all", dash.MarkAllRead)
		sr.Delete("/{id}", dash.DeleteNotification)
		sr.Delete("/", dash.ClearNotifications)
	})

	mux.Route("/preferences", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))

		sr.Get("/", pref.Get)
		sr.Put("/", pref.Set)
		sr.Post("/sidebar/toggle", pref.ToggleSidebar)
	})

	// Admin routes: "admin.sessions" only matches the wildcard grant.
	mux.Route("/admin", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg, sessions))
		sr.Use(middleware.RequirePermission(permissions.AdminSessions))

		sr.Get("/sessions", admin.ListSessionsHandler(sessions))
	})
}
