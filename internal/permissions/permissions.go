// internal/permissions/permissions.go
package permissions

import "facilityhub/internal/models"

// Permission strings follow the resource.action convention checked by the
// front end before it renders or enables an action.
const (
	WorkOrdersCreate = "work_orders.create"
	WorkOrdersView   = "work_orders.view"
	WorkOrdersEdit   = "work_orders.edit"
	AssetsView       = "assets.view"
	AssetsEdit       = "assets.edit"
	AnalyticsView    = "analytics.view"
	InventoryView    = "inventory.view"
	InventoryEdit    = "inventory.edit"
	SchedulerCreate  = "scheduler.create"
	SchedulerView    = "scheduler.view"
	SchedulerEdit    = "scheduler.edit"
	ManpowerView     = "manpower.view"
	ManpowerEdit     = "manpower.edit"
	ReportsView      = "reports.view"
	ReportsExport    = "reports.export"
)

// AdminSessions is granted to no role directly; only the wildcard
// matches it, which makes it an admin-only gate.
const AdminSessions = "admin.sessions"

// Wildcard grants every permission. Only Admin carries it.
const Wildcard = "*"

var rolePermissions = map[models.Role][]string{
	models.RoleAdmin: {Wildcard},
	models.RoleSupervisor: {
		WorkOrdersCreate, WorkOrdersView, WorkOrdersEdit,
		AssetsView, AssetsEdit,
		AnalyticsView,
		InventoryView, InventoryEdit,
		SchedulerCreate, SchedulerView, SchedulerEdit,
		ManpowerView, ManpowerEdit,
		ReportsView, ReportsExport,
	},
	models.RoleTechnician: {
		WorkOrdersView, WorkOrdersEdit,
		AssetsView,
		InventoryView,
		SchedulerView,
		ReportsView,
	},
	models.RoleViewer: {
		WorkOrdersView,
		AssetsView,
		AnalyticsView,
		InventoryView,
		SchedulerView,
		ReportsView,
	},
}

// Has reports whether the role may perform the given permission. It is a
// pure lookup: unknown roles resolve to the empty set, so the answer for
// them is always false.
func Has(role models.Role, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == Wildcard || p == permission {
			return true
		}
	}
	return false
}

// For returns a copy of the permission strings assigned to the role.
// Admin's set is the wildcard.
func For(role models.Role) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
