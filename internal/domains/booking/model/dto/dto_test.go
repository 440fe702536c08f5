package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/domains/booking/model"
	"slotkeeper/internal/domains/booking/model/dto"
	"slotkeeper/internal/scheduling/lifecycle"
	gDto "slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
)

func TestListQuery_FromRequest(t *testing.T) {
	resourceID := uuid.New()

	tests := []struct {
		name     string
		url      string
		wantErr  bool
		validate func(t *testing.T, q dto.ListQuery)
	}{
		{
			name: "defaults",
			url:  "/bookings",
			validate: func(t *testing.T, q dto.ListQuery) {
				assert.Equal(t, model.FieldStartAt, q.SortBy)
				assert.Equal(t, gDto.SortDirAsc, q.SortDir)
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, 10, q.Limit)
			},
		},
		{
			name: "filters",
			url:  "/bookings?resource_id=" + resourceID.String() + "&status=confirmed&from=2030-03-04T00:00:00Z&sort_by=created_at&sort_dir=desc",
			validate: func(t *testing.T, q dto.ListQuery) {
				assert.Equal(t, resourceID, q.ResourceID)
				assert.Equal(t, lifecycle.BookingConfirmed, q.Status)
				assert.Equal(t, time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC), q.From)
				assert.Equal(t, "DESC", q.SortDir)
			},
		},
		{name: "unknown status", url: "/bookings?status=archived", wantErr: true},
		{name: "bad resource id", url: "/bookings?resource_id=abc", wantErr: true},
		{name: "bad from", url: "/bookings?from=yesterday", wantErr: true},
		{name: "sort column not allowed", url: "/bookings?sort_by=customer_email", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q dto.ListQuery

			err := q.FromRequest(httptest.NewRequest("GET", tt.url, nil))
			if tt.wantErr {
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.validate(t, q)
		})
	}
}

func TestListQuery_Filter(t *testing.T) {
	businessID := uuid.New()
	q := dto.ListQuery{
		Status: lifecycle.BookingPending,
		From:   time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2030, time.March, 5, 0, 0, 0, 0, time.UTC),
	}

	filter := q.Filter(businessID)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.business_id = :business_id AND bookings.status = :status AND bookings.start_at >= :start_from AND bookings.start_at < :start_to)", where)
	assert.Equal(t, businessID, args["business_id"])
	assert.Len(t, args, 4)
}
