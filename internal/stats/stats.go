// internal/stats/stats.go
package stats

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

// Compute derives a DashboardStats snapshot from the source collections.
// Pure arithmetic: same inputs, same snapshot.
func Compute(workOrders []models.WorkOrder, assets []models.Asset, parts []models.SparePart, users []models.User) models.DashboardStats {
	var s models.DashboardStats
	s.TotalWorkOrders = len(workOrders)
	for _, wo := range workOrders {
		switch {
		case wo.Status == models.WorkOrderPending:
			s.PendingWorkOrders++
		case wo.Completed():
			s.CompletedWorkOrders++
		case wo.Status == models.WorkOrderInProgress:
			s.ActiveTasks++
		}
	}
	s.TotalAssets = len(assets)
	for _, a := range assets {
		if a.Status == models.AssetUnderMaintenance {
			s.AssetsUnderMaintenance++
		}
	}
	for _, p := range parts {
		if p.LowStock() {
			s.LowStockParts++
		}
	}
	for _, u := range users {
		if u.Role == models.RoleTechnician {
			s.TotalTechnicians++
		}
	}
	return s
}

// Aggregator recomputes the dashboard snapshot whenever a source store
// changes and raises threshold notifications. A notification fires only on
// the transition of its condition from false to true, so a condition that
// merely keeps holding across recomputations stays quiet until it clears
// and trips again.
type Aggregator struct {
	reg *store.Registry

	mu            sync.Mutex
	stats         models.DashboardStats
	pendingAlert  bool
	lowStockAlert bool

	// AlertRecipient is the user notified about threshold crossings.
	// Zero means the notification is addressed to everyone.
	AlertRecipient uuid.UUID
}

// NewAggregator wires the aggregator to the work-order, asset, spare-part
// and user stores and performs an initial recomputation.
func NewAggregator(reg *store.Registry) *Aggregator {
	a := &Aggregator{reg: reg}
	reg.WorkOrders.OnChange(a.recompute)
	reg.Assets.OnChange(a.recompute)
	reg.SpareParts.OnChange(a.recompute)
	reg.Users.OnChange(a.recompute)
	a.recompute()
	return a
}

// Stats returns the latest snapshot.
func (a *Aggregator) Stats() models.DashboardStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Aggregator) recompute() {
	next := Compute(a.reg.WorkOrders.List(), a.reg.Assets.List(), a.reg.SpareParts.List(), a.reg.Users.List())

	a.mu.Lock()
	a.stats = next

	pendingNow := next.PendingWorkOrders > 0
	lowStockNow := next.LowStockParts > 0
	firePending := pendingNow && !a.pendingAlert
	fireLowStock := lowStockNow && !a.lowStockAlert
	a.pendingAlert = pendingNow
	a.lowStockAlert = lowStockNow
	recipient := a.AlertRecipient
	a.mu.Unlock()

	if firePending {
		a.emit(models.Notification{
			ID:      uuid.New(),
			Title:   "Pending Work Orders",
			Message: fmt.Sprintf("You have %d pending work orders that need attention.", next.PendingWorkOrders),
			Type:    models.NotificationWarning,
			UserID:  recipient,
		})
	}
	if fireLowStock {
		a.emit(models.Notification{
			ID:      uuid.New(),
			Title:   "Low Stock Alert",
			Message: fmt.Sprintf("%d spare parts are running low on stock.", next.LowStockParts),
			Type:    models.NotificationError,
			UserID:  recipient,
		})
	}
}

func (a *Aggregator) emit(n models.Notification) {
	n.CreatedAt = time.Now()
	if _, err := a.reg.Notifications.Add(n); err != nil {
		slog.Warn("stats: notification dropped", "title", n.Title, "err", err)
	}
}
