package stats_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilityhub/internal/models"
	"facilityhub/internal/stats"
	"facilityhub/internal/store"
)

func wo(status models.WorkOrderStatus) models.WorkOrder {
	return models.WorkOrder{ID: uuid.New(), Title: "wo", Status: status, Priority: models.PriorityMedium}
}

func part(stock, min int) models.SparePart {
	return models.SparePart{ID: uuid.New(), Name: "part", Category: models.PartGeneral, CurrentStock: stock, MinimumStock: min}
}

func TestComputeWorkOrderBuckets(t *testing.T) {
	orders := []models.WorkOrder{
		wo(models.WorkOrderPending),
		wo(models.WorkOrderPending),
		wo(models.WorkOrderInProgress),
		wo(models.WorkOrderDone),
		wo(models.WorkOrderClosed),
	}
	s := stats.Compute(orders, nil, nil, nil)
	assert.Equal(t, 5, s.TotalWorkOrders)
	assert.Equal(t, 2, s.PendingWorkOrders)
	assert.Equal(t, 2, s.CompletedWorkOrders)
	assert.Equal(t, 1, s.ActiveTasks)
}

func TestComputeLowStockBoundary(t *testing.T) {
	parts := []models.SparePart{
		part(3, 5),  // below minimum
		part(5, 5),  // at minimum: still low
		part(6, 5),  // above
	}
	s := stats.Compute(nil, nil, parts, nil)
	assert.Equal(t, 2, s.LowStockParts)
}

func TestComputeAssetsAndTechnicians(t *testing.T) {
	assets := []models.Asset{
		{ID: uuid.New(), Status: models.AssetActive},
		{ID: uuid.New(), Status: models.AssetUnderMaintenance},
		{ID: uuid.New(), Status: models.AssetRetired},
	}
	users := []models.User{
		{ID: uuid.New(), Role: models.RoleTechnician},
		{ID: uuid.New(), Role: models.RoleTechnician},
		{ID: uuid.New(), Role: models.RoleAdmin},
	}
	s := stats.Compute(nil, assets, nil, users)
	assert.Equal(t, 3, s.TotalAssets)
	assert.Equal(t, 1, s.AssetsUnderMaintenance)
	assert.Equal(t, 2, s.TotalTechnicians)
}

func TestAggregatorRecomputesOnStoreChange(t *testing.T) {
	reg := store.NewRegistry()
	agg := stats.NewAggregator(reg)

	_, err := reg.WorkOrders.Add(wo(models.WorkOrderPending))
	require.NoError(t, err)
	assert.Equal(t, 1, agg.Stats().PendingWorkOrders)

	_, err = reg.SpareParts.Add(part(2, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, agg.Stats().LowStockParts)
}

func notificationsOfType(reg *store.Registry, typ models.NotificationType) []models.Notification {
	var out []models.Notification
	for _, n := range reg.Notifications.List() {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func TestThresholdNotificationFiresOnTransitionOnly(t *testing.T) {
	reg := store.NewRegistry()
	stats.NewAggregator(reg)

	first, err := reg.WorkOrders.Add(wo(models.WorkOrderPending))
	require.NoError(t, err)
	assert.Len(t, notificationsOfType(reg, models.NotificationWarning), 1)

	// condition keeps holding: no second warning
	_, err = reg.WorkOrders.Add(wo(models.WorkOrderPending))
	require.NoError(t, err)
	assert.Len(t, notificationsOfType(reg, models.NotificationWarning), 1)

	// clear the condition, then trip it again: re-armed
	done := models.WorkOrderDone
	_, err = reg.WorkOrders.Update(first.ID, models.WorkOrderPatch{Status: &done})
	require.NoError(t, err)
	for _, o := range reg.WorkOrders.List() {
		if o.Status == models.WorkOrderPending {
			_, err = reg.WorkOrders.Update(o.ID, models.WorkOrderPatch{Status: &done})
			require.NoError(t, err)
		}
	}
	_, err = reg.WorkOrders.Add(wo(models.WorkOrderPending))
	require.NoError(t, err)
	assert.Len(t, notificationsOfType(reg, models.NotificationWarning), 2)
}

func TestLowStockNotificationType(t *testing.T) {
	reg := store.NewRegistry()
	stats.NewAggregator(reg)

	_, err := reg.SpareParts.Add(part(5, 5))
	require.NoError(t, err)
	errs := notificationsOfType(reg, models.NotificationError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Low Stock Alert", errs[0].Title)
	assert.False(t, errs[0].Read)
}
