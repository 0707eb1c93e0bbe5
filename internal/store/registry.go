// internal/store/registry.go
package store

import "facilityhub/internal/models"

// Registry bundles one store per entity kind. It is constructed once in
// main and passed by reference to handlers; there are no package-level
// singletons.
type Registry struct {
	WorkOrders    *Store[models.WorkOrder, models.WorkOrderPatch]
	Assets        *Store[models.Asset, models.AssetPatch]
	SpareParts    *Store[models.SparePart, models.SparePartPatch]
	Tasks         *Store[models.ScheduledTask, models.ScheduledTaskPatch]
	Users         *Store[models.User, models.UserPatch]
	Locations     *Store[models.Location, models.LocationPatch]
	Buildings     *Store[models.Building, models.BuildingPatch]
	Departments   *Store[models.Department, models.DepartmentPatch]
	Notifications *Store[models.Notification, models.NotificationPatch]
}

func NewRegistry() *Registry {
	return &Registry{
		WorkOrders:    New[models.WorkOrder, models.WorkOrderPatch](),
		Assets:        New[models.Asset, models.AssetPatch](),
		SpareParts:    New[models.SparePart, models.SparePartPatch](),
		Tasks:         New[models.ScheduledTask, models.ScheduledTaskPatch](),
		Users:         New[models.User, models.UserPatch](),
		Locations:     New[models.Location, models.LocationPatch](),
		Buildings:     New[models.Building, models.BuildingPatch](),
		Departments:   New[models.Department, models.DepartmentPatch](),
		Notifications: New[models.Notification, models.NotificationPatch](),
	}
}
