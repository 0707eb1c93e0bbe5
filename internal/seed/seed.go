// Package seed loads the built-in directory users and, optionally, a
// small demo dataset for local development.
package seed

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

// Fixed ids so restarts keep references stable and the persisted identity
// snapshot stays valid across runs.
var (
	AdminID      = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	SupervisorID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TechnicianID = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

// Users loads the built-in directory accounts into the user store.
func Users(reg *store.Registry) {
	now := time.Now()
	reg.Users.ReplaceAll([]models.User{
		{
			ID:          AdminID,
			Email:       "admin@facility.com",
			Name:        "System Administrator",
			Role:        models.RoleAdmin,
			Department:  "IT",
			Shift:       models.ShiftDay,
			ContactInfo: "+1-555-0101",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          SupervisorID,
			Email:       "supervisor@facility.com",
			Name:        "John Supervisor",
			Role:        models.RoleSupervisor,
			Department:  "Maintenance",
			Shift:       models.ShiftDay,
			ContactInfo: "+1-555-0102",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          TechnicianID,
			Email:       "tech@facility.com",
			Name:        "Mike Technician",
			Role:        models.RoleTechnician,
			Department:  "HVAC",
			Shift:       models.ShiftDay,
			ContactInfo: "+1-555-0103",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
	slog.Info("seed: directory users loaded", "count", reg.Users.Len())
}

// Demo loads a small sample dataset: a site with one building and
// department, a couple of assets, parts and work orders. Intended for
// local development only.
func Demo(reg *store.Registry) {
	now := time.Now()

	locID := uuid.New()
	reg.Locations.ReplaceAll([]models.Location{
		{ID: locID, Name: "Main Campus", Address: "1 Facility Way", CreatedAt: now},
	})

	bldID := uuid.New()
	reg.Buildings.ReplaceAll([]models.Building{
		{ID: bldID, Name: "Building A", LocationID: locID, CreatedAt: now},
	})

	depID := uuid.New()
	reg.Departments.ReplaceAll([]models.Department{
		{ID: depID, Name: "Maintenance", BuildingID: bldID, ManagerID: SupervisorID, CreatedAt: now},
	})

	reg.Assets.ReplaceAll([]models.Asset{
		{
			ID: uuid.New(), Name: "Rooftop AHU-1", SerialNumber: "AHU-2021-001",
			Category: "HVAC", LocationID: locID, BuildingID: bldID, DepartmentID: depID,
			Status: models.AssetActive, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Name: "Backup Generator", SerialNumber: "GEN-2019-044",
			Category: "Electrical", LocationID: locID, BuildingID: bldID, DepartmentID: depID,
			Status: models.AssetUnderMaintenance, CreatedAt: now, UpdatedAt: now,
		},
	})

	reg.SpareParts.ReplaceAll([]models.SparePart{
		{
			ID: uuid.New(), Name: "Air Filter 24x24", Category: models.PartHVAC,
			PartNumber: "AF-2424", CurrentStock: 12, MinimumStock: 5,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Name: "V-Belt B42", Category: models.PartMechanical,
			PartNumber: "VB-B42", CurrentStock: 2, MinimumStock: 4,
			CreatedAt: now, UpdatedAt: now,
		},
	})

	reg.WorkOrders.ReplaceAll([]models.WorkOrder{
		{
			ID: uuid.New(), Title: "Replace AHU-1 filters",
			Priority: models.PriorityMedium, Status: models.WorkOrderPending,
			AssignedTo: TechnicianID, CreatedBy: SupervisorID,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Title: "Generator quarterly service",
			Priority: models.PriorityHigh, Status: models.WorkOrderInProgress,
			AssignedTo: TechnicianID, CreatedBy: SupervisorID,
			CreatedAt: now, UpdatedAt: now,
		},
	})

	slog.Info("seed: demo dataset loaded")
}
