package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilityhub/internal/localstore"
	"facilityhub/internal/models"
	"facilityhub/internal/prefs"
	"facilityhub/internal/seed"
	"facilityhub/internal/session"
	"facilityhub/internal/stats"
	"facilityhub/internal/store"
)

type testEnv struct {
	mux      *chi.Mux
	reg      *store.Registry
	sessions *session.Store
	agg      *stats.Aggregator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reg := store.NewRegistry()
	agg := stats.NewAggregator(reg)
	seed.Users(reg)
	agg.AlertRecipient = seed.AdminID

	ls, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	sessions := session.NewStore()
	mux := chi.NewRouter()
	RegisterRoutes(mux, reg, sessions, agg, prefs.NewManager(ls))
	return &testEnv{mux: mux, reg: reg, sessions: sessions, agg: agg}
}

func (e *testEnv) loginAs(userID uuid.UUID, role models.Role) *http.Cookie {
	id := e.sessions.Create(models.Session{
		UserID: userID,
		Role:   role,
		Expiry: time.Now().Add(time.Hour),
	})
	return &http.Cookie{Name: "session", Value: id}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestWorkOrderCRUD(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/work-orders/", map[string]any{
		"title":    "Inspect chiller",
		"priority": "High",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.WorkOrder
	decodeInto(t, rec, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.WorkOrderPending, created.Status)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, seed.AdminID, created.CreatedBy)
	assert.Nil(t, created.CompletedAt)

	rec = env.do(t, http.MethodGet, "/work-orders/", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.WorkOrder
	decodeInto(t, rec, &list)
	require.Len(t, list, 1)

	// Shallow merge: only the title changes.
	rec = env.do(t, http.MethodPatch, "/work-orders/"+created.ID.String(), map[string]any{
		"title": "Inspect chiller #2",
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.WorkOrder
	decodeInto(t, rec, &updated)
	assert.Equal(t, "Inspect chiller #2", updated.Title)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	// Completing stamps CompletedAt once.
	rec = env.do(t, http.MethodPatch, "/work-orders/"+created.ID.String(), map[string]any{
		"status": "Done",
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var done models.WorkOrder
	decodeInto(t, rec, &done)
	require.NotNil(t, done.CompletedAt)
	firstCompleted := *done.CompletedAt

	rec = env.do(t, http.MethodPatch, "/work-orders/"+created.ID.String(), map[string]any{
		"actual_hours": 2.5,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var after models.WorkOrder
	decodeInto(t, rec, &after)
	require.NotNil(t, after.CompletedAt)
	assert.Equal(t, firstCompleted.Unix(), after.CompletedAt.Unix())

	rec = env.do(t, http.MethodDelete, "/work-orders/"+created.ID.String(), nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/work-orders/"+created.ID.String(), nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingIDReturns404(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodPatch, "/work-orders/"+uuid.NewString(), map[string]any{
		"title": "ghost",
	}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, env.reg.WorkOrders.Len())
}

func TestTechnicianCannotCreateWorkOrder(t *testing.T) {
	env := newTestEnv(t)
	tech := env.loginAs(seed.TechnicianID, models.RoleTechnician)

	rec := env.do(t, http.MethodPost, "/work-orders/", map[string]any{
		"title": "not allowed",
	}, tech)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"permission_denied"}`, rec.Body.String())
	assert.Equal(t, 0, env.reg.WorkOrders.Len())

	// The same role can still edit.
	wo, err := env.reg.WorkOrders.Add(models.WorkOrder{
		ID: uuid.New(), Title: "assigned job", Status: models.WorkOrderPending,
		Priority: models.PriorityLow, CreatedBy: seed.SupervisorID,
	})
	require.NoError(t, err)
	rec = env.do(t, http.MethodPatch, "/work-orders/"+wo.ID.String(), map[string]any{
		"status": "In Progress",
	}, tech)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestViewerDeniedUserList(t *testing.T) {
	env := newTestEnv(t)

	viewer, err := env.reg.Users.Add(models.User{
		ID: uuid.New(), Name: "Watcher", Email: "viewer@facility.com", Role: models.RoleViewer,
	})
	require.NoError(t, err)
	cookie := env.loginAs(viewer.ID, models.RoleViewer)

	rec := env.do(t, http.MethodGet, "/users/", nil, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// But the viewer can read work orders.
	rec = env.do(t, http.MethodGet, "/work-orders/", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnauthenticatedRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/work-orders/", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/dashboard/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelectionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/work-orders/", map[string]any{"title": "pick me"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var wo models.WorkOrder
	decodeInto(t, rec, &wo)

	rec = env.do(t, http.MethodPut, "/work-orders/selected", map[string]any{"id": wo.ID}, admin)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/work-orders/selected", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var sel struct {
		Selected *models.WorkOrder `json:"selected"`
	}
	decodeInto(t, rec, &sel)
	require.NotNil(t, sel.Selected)
	assert.Equal(t, wo.ID, sel.Selected.ID)

	// Deleting the selected item clears the selection.
	rec = env.do(t, http.MethodDelete, "/work-orders/"+wo.ID.String(), nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/work-orders/selected", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	sel.Selected = nil
	decodeInto(t, rec, &sel)
	assert.Nil(t, sel.Selected)

	// Selecting an unknown id is a 404.
	rec = env.do(t, http.MethodPut, "/work-orders/selected", map[string]any{"id": uuid.New()}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardStatsAndNotifications(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/dashboard/stats", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var before models.DashboardStats
	decodeInto(t, rec, &before)
	assert.Equal(t, 0, before.PendingWorkOrders)
	assert.Equal(t, 1, before.TotalTechnicians)

	rec = env.do(t, http.MethodPost, "/work-orders/", map[string]any{"title": "leaky valve"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/dashboard/stats", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var after models.DashboardStats
	decodeInto(t, rec, &after)
	assert.Equal(t, 1, after.TotalWorkOrders)
	assert.Equal(t, 1, after.PendingWorkOrders)

	// The pending threshold crossing raised a notification.
	rec = env.do(t, http.MethodGet, "/notifications/", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed []models.Notification
	decodeInto(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "Pending Work Orders", feed[0].Title)
	assert.Equal(t, models.NotificationWarning, feed[0].Type)
	assert.False(t, feed[0].Read)

	rec = env.do(t, http.MethodPatch, "/notifications/"+feed[0].ID.String()+"/read", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var marked models.Notification
	decodeInto(t, rec, &marked)
	assert.True(t, marked.Read)

	rec = env.do(t, http.MethodDelete, "/notifications/", nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, env.reg.Notifications.Len())
}

func TestLowStockEndpoint(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/spare-parts/", map[string]any{
		"name": "Bearing 6204", "part_number": "BRG-6204",
		"current_stock": 3, "minimum_stock": 5,
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var part models.SparePart
	decodeInto(t, rec, &part)
	assert.True(t, part.LowStock())

	rec = env.do(t, http.MethodGet, "/spare-parts/low-stock", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var low []models.SparePart
	decodeInto(t, rec, &low)
	require.Len(t, low, 1)

	// Restocking above the minimum clears the low-stock state.
	rec = env.do(t, http.MethodPost, "/spare-parts/"+part.ID.String()+"/restock", map[string]any{
		"quantity": 10,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var restocked models.SparePart
	decodeInto(t, rec, &restocked)
	assert.Equal(t, 13, restocked.CurrentStock)
	require.NotNil(t, restocked.LastRestocked)

	rec = env.do(t, http.MethodGet, "/spare-parts/low-stock", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	low = nil
	decodeInto(t, rec, &low)
	assert.Empty(t, low)
}

func TestRecurringTaskRequiresFrequency(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/scheduled-tasks/", map[string]any{
		"title": "Monthly filter swap", "type": "Recurring",
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/scheduled-tasks/", map[string]any{
		"title": "Monthly filter swap", "type": "Recurring", "frequency": "Monthly",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var task models.ScheduledTask
	decodeInto(t, rec, &task)
	assert.Equal(t, models.FrequencyMonthly, task.Frequency)
	assert.Equal(t, models.TaskScheduled, task.Status)

	// One-time tasks drop any frequency the client sent.
	rec = env.do(t, http.MethodPost, "/scheduled-tasks/", map[string]any{
		"title": "Install sensor", "type": "One-time", "frequency": "Weekly",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	task = models.ScheduledTask{}
	decodeInto(t, rec, &task)
	assert.Empty(t, task.Frequency)
}

func TestAdminSessionsGate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)
	sup := env.loginAs(seed.SupervisorID, models.RoleSupervisor)

	rec := env.do(t, http.MethodGet, "/admin/sessions", nil, sup)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/sessions", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var out []map[string]any
	decodeInto(t, rec, &out)
	assert.Len(t, out, 2)
}

func TestRoleChangeInvalidatesSessions(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)
	tech := env.loginAs(seed.TechnicianID, models.RoleTechnician)

	rec := env.do(t, http.MethodGet, "/work-orders/", nil, tech)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, "/users/"+seed.TechnicianID.String(), map[string]any{
		"role": "Viewer",
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/work-orders/", nil, tech)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreferencesRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	admin := env.loginAs(seed.AdminID, models.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/preferences/", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var p prefs.Preferences
	decodeInto(t, rec, &p)
	assert.True(t, p.SidebarOpen)
	assert.Equal(t, "light", p.Theme)

	rec = env.do(t, http.MethodPost, "/preferences/sidebar/toggle", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &p)
	assert.False(t, p.SidebarOpen)

	rec = env.do(t, http.MethodPut, "/preferences/", prefs.Preferences{SidebarOpen: true, Theme: "dark"}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &p)
	assert.Equal(t, "dark", p.Theme)
}
