package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		want   []string
	}{
		{
			name:   "staff only transition",
			path:   "/v1/businesses/{businessID}/bookings/{bookingID}/confirm",
			method: http.MethodPost,
			want:   []string{"superadmin", "manager", "staff"},
		},
		{
			name:   "managers edit policy",
			path:   "/v1/businesses/{businessID}/policy",
			method: http.MethodPut,
			want:   []string{"superadmin", "manager"},
		},
		{
			name:   "customers read availability",
			path:   "/v1/businesses/{businessID}/resources/{resourceID}/availability",
			method: http.MethodGet,
			want:   []string{"superadmin", "manager", "staff", "customer"},
		},
		{
			name:   "method must match",
			path:   "/v1/businesses/{businessID}/policy",
			method: http.MethodGet,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.FindPermissions(tt.path, tt.method).Permissions)
		})
	}
}
