package navigation_test

import (
	"phoenix/navigation"
	"phoenix/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	nav := navigation.Get()

	require.NotNil(t, nav)
	assert.Len(t, nav.Roles, 3)
}

func TestHomeRoute(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "customer", role: constant.RoleCustomer, want: "/customer"},
		{name: "staff", role: constant.RoleStaff, want: "/staff"},
		{name: "admin", role: constant.RoleAdmin, want: "/admin"},
		{name: "unknown role falls back to landing page", role: "superuser", want: constant.RouteHome},
		{name: "empty role falls back to landing page", role: "", want: constant.RouteHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nav.HomeRoute(tt.role))
		})
	}
}

func TestItems(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	tests := []struct {
		name      string
		role      string
		wantCount int
	}{
		{name: "customer has four entries", role: constant.RoleCustomer, wantCount: 4},
		{name: "staff has five entries", role: constant.RoleStaff, wantCount: 5},
		{name: "admin has seven entries", role: constant.RoleAdmin, wantCount: 7},
		{name: "unknown role has none", role: "superuser", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, nav.Items(tt.role), tt.wantCount)
		})
	}
}

func TestItemsPointIntoOwnSection(t *testing.T) {
	nav := navigation.Get()
	require.NotNil(t, nav)

	for _, item := range nav.Items(constant.RoleAdmin)[1:] {
		assert.Contains(t, item.Path, "/admin")
	}

	// No staff entry ever points into the admin area.
	for _, item := range nav.Items(constant.RoleStaff) {
		assert.NotContains(t, item.Path, "/admin")
	}
}
