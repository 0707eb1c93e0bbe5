// internal/models/types.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role governs the permission set resolved for a user. Unknown roles
// resolve to zero permissions.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSupervisor Role = "Supervisor"
	RoleTechnician Role = "Technician"
	RoleViewer     Role = "Viewer"
)

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Department  string    `json:"department,omitempty"`
	Shift       Shift     `json:"shift,omitempty"`
	ContactInfo string    `json:"contact_info,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u User) EntityID() uuid.UUID { return u.ID }

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "Pending"
	WorkOrderInProgress WorkOrderStatus = "In Progress"
	WorkOrderDone       WorkOrderStatus = "Done"
	WorkOrderClosed     WorkOrderStatus = "Closed"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentVideo    AttachmentType = "video"
	AttachmentDocument AttachmentType = "document"
)

type Attachment struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	URL        string         `json:"url"`
	Type       AttachmentType `json:"type"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// WorkOrder is a unit of maintenance work. Location, building, department
// and user fields are by-id references; nothing here owns anything.
type WorkOrder struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	LocationID     uuid.UUID       `json:"location_id,omitempty"`
	BuildingID     uuid.UUID       `json:"building_id,omitempty"`
	DepartmentID   uuid.UUID       `json:"department_id,omitempty"`
	Priority       Priority        `json:"priority"`
	Status         WorkOrderStatus `json:"status"`
	AssignedTo     uuid.UUID       `json:"assigned_to,omitempty"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
	EstimatedHours float64         `json:"estimated_hours,omitempty"`
	ActualHours    float64         `json:"actual_hours,omitempty"`
	Cost           float64         `json:"cost,omitempty"`
}

func (w WorkOrder) EntityID() uuid.UUID { return w.ID }

// Completed reports whether the order reached a terminal status.
func (w WorkOrder) Completed() bool {
	return w.Status == WorkOrderDone || w.Status == WorkOrderClosed
}

type AssetStatus string

const (
	AssetActive           AssetStatus = "Active"
	AssetInactive         AssetStatus = "Inactive"
	AssetUnderMaintenance AssetStatus = "Under Maintenance"
	AssetRetired          AssetStatus = "Retired"
)

type Asset struct {
	ID                  uuid.UUID      `json:"id"`
	Name                string         `json:"name"`
	SerialNumber        string         `json:"serial_number"`
	Category            string         `json:"category"`
	LocationID          uuid.UUID      `json:"location_id,omitempty"`
	BuildingID          uuid.UUID      `json:"building_id,omitempty"`
	DepartmentID        uuid.UUID      `json:"department_id,omitempty"`
	Supplier            string         `json:"supplier,omitempty"`
	Status              AssetStatus    `json:"status"`
	WarrantyDate        *time.Time     `json:"warranty_date,omitempty"`
	PurchaseDate        *time.Time     `json:"purchase_date,omitempty"`
	PurchaseCost        float64        `json:"purchase_cost,omitempty"`
	CurrentValue        float64        `json:"current_value,omitempty"`
	LastMaintenanceDate *time.Time     `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time     `json:"next_maintenance_date,omitempty"`
	Specifications      map[string]any `json:"specifications,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (a Asset) EntityID() uuid.UUID { return a.ID }

type PartCategory string

const (
	PartHVAC       PartCategory = "HVAC"
	PartElectrical PartCategory = "Electrical"
	PartPlumbing   PartCategory = "Plumbing"
	PartMechanical PartCategory = "Mechanical"
	PartGeneral    PartCategory = "General"
)

type SparePart struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Category      PartCategory `json:"category"`
	PartNumber    string       `json:"part_number"`
	Supplier      string       `json:"supplier,omitempty"`
	CurrentStock  int          `json:"current_stock"`
	MinimumStock  int          `json:"minimum_stock"`
	UnitCost      float64      `json:"unit_cost,omitempty"`
	Location      string       `json:"location,omitempty"`
	LastRestocked *time.Time   `json:"last_restocked,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (p SparePart) EntityID() uuid.UUID { return p.ID }

// LowStock is true at the boundary: stock equal to the minimum counts.
func (p SparePart) LowStock() bool { return p.CurrentStock <= p.MinimumStock }

type TaskType string

const (
	TaskRecurring TaskType = "Recurring"
	TaskOneTime   TaskType = "One-time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyYearly  Frequency = "Yearly"
)

type TaskStatus string

const (
	TaskScheduled  TaskStatus = "Scheduled"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"
)

type ScheduledTask struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Type           TaskType   `json:"type"`
	Frequency      Frequency  `json:"frequency,omitempty"`
	AssignedTo     uuid.UUID  `json:"assigned_to,omitempty"`
	LocationID     uuid.UUID  `json:"location_id,omitempty"`
	BuildingID     uuid.UUID  `json:"building_id,omitempty"`
	DepartmentID   uuid.UUID  `json:"department_id,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (t ScheduledTask) EntityID() uuid.UUID { return t.ID }

type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (l Location) EntityID() uuid.UUID { return l.ID }

type Building struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LocationID uuid.UUID `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (b Building) EntityID() uuid.UUID { return b.ID }

type Department struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BuildingID uuid.UUID `json:"building_id"`
	ManagerID  uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d Department) EntityID() uuid.UUID { return d.ID }

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	UserID    uuid.UUID        `json:"user_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n Notification) EntityID() uuid.UUID { return n.ID }

// DashboardStats is a pure snapshot derived from the other collections.
type DashboardStats struct {
	TotalWorkOrders        int `json:"total_work_orders"`
	PendingWorkOrders      int `json:"pending_work_orders"`
	CompletedWorkOrders    int `json:"completed_work_orders"`
	TotalAssets            int `json:"total_assets"`
	AssetsUnderMaintenance int `json:"assets_under_maintenance"`
	LowStockParts          int `json:"low_stock_parts"`
	TotalTechnicians       int `json:"total_technicians"`
	ActiveTasks            int `json:"active_tasks"`
}

type Session struct {
	UserID uuid.UUID
	Role   Role
	Expiry time.Time
}

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
