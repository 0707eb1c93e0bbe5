package permissions_test

import (
	"testing"

	"facilityhub/internal/models"
	"facilityhub/internal/permissions"

	"github.com/stretchr/testify/assert"
)

func TestAdminWildcard(t *testing.T) {
	for _, perm := range []string{
		permissions.WorkOrdersCreate,
		permissions.ManpowerEdit,
		"admin.sessions",
		"anything.at_all",
	} {
		assert.True(t, permissions.Has(models.RoleAdmin, perm), perm)
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	assert.False(t, permissions.Has(models.Role("Contractor"), permissions.WorkOrdersView))
	assert.False(t, permissions.Has(models.Role(""), permissions.WorkOrdersView))
	assert.Nil(t, permissions.For(models.Role("Contractor")))
}

func TestRoleSets(t *testing.T) {
	cases := []struct {
		role models.Role
		perm string
		want bool
	}{
		{models.RoleSupervisor, permissions.WorkOrdersCreate, true},
		{models.RoleSupervisor, permissions.ReportsExport, true},
		{models.RoleTechnician, permissions.WorkOrdersCreate, false},
		{models.RoleTechnician, permissions.WorkOrdersEdit, true},
		{models.RoleTechnician, permissions.AnalyticsView, false},
		{models.RoleTechnician, permissions.InventoryEdit, false},
		{models.RoleViewer, permissions.AnalyticsView, true},
		{models.RoleViewer, permissions.WorkOrdersEdit, false},
		{models.RoleViewer, permissions.ManpowerView, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, permissions.Has(c.role, c.perm), "%s %s", c.role, c.perm)
	}
}

func TestForReturnsCopy(t *testing.T) {
	perms := permissions.For(models.RoleViewer)
	assert.NotEmpty(t, perms)
	perms[0] = "tampered"
	assert.True(t, permissions.Has(models.RoleViewer, permissions.WorkOrdersView))
}
