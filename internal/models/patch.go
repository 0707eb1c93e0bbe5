// internal/models/patch.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Patch types carry partial updates: nil fields are left untouched, set
// fields overwrite. Apply is a shallow field-wise overlay onto the existing
// record, never a full replace.

type UserPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	Department  *string `json:"department,omitempty"`
	Shift       *Shift  `json:"shift,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Shift != nil {
		u.Shift = *p.Shift
	}
	if p.ContactInfo != nil {
		u.ContactInfo = *p.ContactInfo
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = *p.UpdatedAt
	}
	return u
}

type WorkOrderPatch struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	LocationID     *uuid.UUID       `json:"location_id,omitempty"`
	BuildingID     *uuid.UUID       `json:"building_id,omitempty"`
	DepartmentID   *uuid.UUID       `json:"department_id,omitempty"`
	Priority       *Priority        `json:"priority,omitempty"`
	Status         *WorkOrderStatus `json:"status,omitempty"`
	AssignedTo     *uuid.UUID       `json:"assigned_to,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	Attachments    *[]Attachment    `json:"attachments,omitempty"`
	EstimatedHours *float64         `json:"estimated_hours,omitempty"`
	ActualHours    *float64         `json:"actual_hours,omitempty"`
	Cost           *float64         `json:"cost,omitempty"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
}

func (p WorkOrderPatch) Apply(w WorkOrder) WorkOrder {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.LocationID != nil {
		w.LocationID = *p.LocationID
	}
	if p.BuildingID != nil {
		w.BuildingID = *p.BuildingID
	}
	if p.DepartmentID != nil {
		w.DepartmentID = *p.DepartmentID
	}
	if p.Priority != nil {
		w.Priority = *p.Priority
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.AssignedTo != nil {
		w.AssignedTo = *p.AssignedTo
	}
	if p.CompletedAt != nil {
		w.CompletedAt = p.CompletedAt
	}
	if p.Attachments != nil {
		w.Attachments = *p.Attachments
	}
	if p.EstimatedHours != nil {
		w.EstimatedHours = *p.EstimatedHours
	}
	if p.ActualHours != nil {
		w.ActualHours = *p.ActualHours
	}
	if p.Cost != nil {
		w.Cost = *p.Cost
	}
	if p.UpdatedAt != nil {
		w.UpdatedAt = *p.UpdatedAt
	}
	return w
}

type AssetPatch struct {
	Name                *string         `json:"name,omitempty"`
	SerialNumber        *string         `json:"serial_number,omitempty"`
	Category            *string         `json:"category,omitempty"`
	LocationID          *uuid.UUID      `json:"location_id,omitempty"`
	BuildingID          *uuid.UUID      `json:"building_id,omitempty"`
	DepartmentID        *uuid.UUID      `json:"department_id,omitempty"`
	Supplier            *string         `json:"supplier,omitempty"`
	Status              *AssetStatus    `json:"status,omitempty"`
	WarrantyDate        *time.Time      `json:"warranty_date,omitempty"`
	PurchaseDate        *time.Time      `json:"purchase_date,omitempty"`
	PurchaseCost        *float64        `json:"purchase_cost,omitempty"`
	CurrentValue        *float64        `json:"current_value,omitempty"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
	Specifications      *map[string]any `json:"specifications,omitempty"`
	UpdatedAt           *time.Time      `json:"updated_at,omitempty"`
}

func (p AssetPatch) Apply(a Asset) Asset {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.SerialNumber != nil {
		a.SerialNumber = *p.SerialNumber
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.LocationID != nil {
		a.LocationID = *p.LocationID
	}
	if p.BuildingID != nil {
		a.BuildingID = *p.BuildingID
	}
	if p.DepartmentID != nil {
		a.DepartmentID = *p.DepartmentID
	}
	if p.Supplier != nil {
		a.Supplier = *p.Supplier
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.WarrantyDate != nil {
		a.WarrantyDate = p.WarrantyDate
	}
	if p.PurchaseDate != nil {
		a.PurchaseDate = p.PurchaseDate
	}
	if p.PurchaseCost != nil {
		a.PurchaseCost = *p.PurchaseCost
	}
	if p.CurrentValue != nil {
		a.CurrentValue = *p.CurrentValue
	}
	if p.LastMaintenanceDate != nil {
		a.LastMaintenanceDate = p.LastMaintenanceDate
	}
	if p.NextMaintenanceDate != nil {
		a.NextMaintenanceDate = p.NextMaintenanceDate
	}
	if p.Specifications != nil {
		a.Specifications = *p.Specifications
	}
	if p.UpdatedAt != nil {
		a.UpdatedAt = *p.UpdatedAt
	}
	return a
}

type SparePartPatch struct {
	Name          *string       `json:"name,omitempty"`
	Category      *PartCategory `json:"category,omitempty"`
	PartNumber    *string       `json:"part_number,omitempty"`
	Supplier      *string       `json:"supplier,omitempty"`
	CurrentStock  *int          `json:"current_stock,omitempty"`
	MinimumStock  *int          `json:"minimum_stock,omitempty"`
	UnitCost      *float64      `json:"unit_cost,omitempty"`
	Location      *string       `json:"location,omitempty"`
	LastRestocked *time.Time    `json:"last_restocked,omitempty"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

func (p SparePartPatch) Apply(sp SparePart) SparePart {
	if p.Name != nil {
		sp.Name = *p.Name
	}
	if p.Category != nil {
		sp.Category = *p.Category
	}
	if p.PartNumber != nil {
		sp.PartNumber = *p.PartNumber
	}
	if p.Supplier != nil {
		sp.Supplier = *p.Supplier
	}
	if p.CurrentStock != nil {
		sp.CurrentStock = *p.CurrentStock
	}
	if p.MinimumStock != nil {
		sp.MinimumStock = *p.MinimumStock
	}
	if p.UnitCost != nil {
		sp.UnitCost = *p.UnitCost
	}
	if p.Location != nil {
		sp.Location = *p.Location
	}
	if p.LastRestocked != nil {
		sp.LastRestocked = p.LastRestocked
	}
	if p.UpdatedAt != nil {
		sp.UpdatedAt = *p.UpdatedAt
	}
	return sp
}

type ScheduledTaskPatch struct {
	Title          *string     `json:"title,omitempty"`
	Description    *string     `json:"description,omitempty"`
	Type           *TaskType   `json:"type,omitempty"`
	Frequency      *Frequency  `json:"frequency,omitempty"`
	AssignedTo     *uuid.UUID  `json:"assigned_to,omitempty"`
	LocationID     *uuid.UUID  `json:"location_id,omitempty"`
	BuildingID     *uuid.UUID  `json:"building_id,omitempty"`
	DepartmentID   *uuid.UUID  `json:"department_id,omitempty"`
	StartDate      *time.Time  `json:"start_date,omitempty"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	Status         *TaskStatus `json:"status,omitempty"`
	Priority       *Priority   `json:"priority,omitempty"`
	EstimatedHours *float64    `json:"estimated_hours,omitempty"`
	ActualHours    *float64    `json:"actual_hours,omitempty"`
	UpdatedAt      *time.Time  `json:"updated_at,omitempty"`
}

func (p ScheduledTaskPatch) Apply(t ScheduledTask) ScheduledTask {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Frequency != nil {
		t.Frequency = *p.Frequency
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.LocationID != nil {
		t.LocationID = *p.LocationID
	}
	if p.BuildingID != nil {
		t.BuildingID = *p.BuildingID
	}
	if p.DepartmentID != nil {
		t.DepartmentID = *p.DepartmentID
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = p.EndDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.EstimatedHours != nil {
		t.EstimatedHours = *p.EstimatedHours
	}
	if p.ActualHours != nil {
		t.ActualHours = *p.ActualHours
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = *p.UpdatedAt
	}
	return t
}

type LocationPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (p LocationPatch) Apply(l Location) Location {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	return l
}

type BuildingPatch struct {
	Name       *string    `json:"name,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

func (p BuildingPatch) Apply(b Building) Building {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.LocationID != nil {
		b.LocationID = *p.LocationID
	}
	return b
}

type DepartmentPatch struct {
	Name       *string    `json:"name,omitempty"`
	BuildingID *uuid.UUID `json:"building_id,omitempty"`
	ManagerID  *uuid.UUID `json:"manager_id,omitempty"`
}

func (p DepartmentPatch) Apply(d Department) Department {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.BuildingID != nil {
		d.BuildingID = *p.BuildingID
	}
	if p.ManagerID != nil {
		d.ManagerID = *p.ManagerID
	}
	return d
}

type NotificationPatch struct {
	Read *bool `json:"read,omitempty"`
}

func (p NotificationPatch) Apply(n Notification) Notification {
	if p.Read != nil {
		n.Read = *p.Read
	}
	return n
}
