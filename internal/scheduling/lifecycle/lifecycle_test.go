package lifecycle_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
)

func TestTransitionBooking(t *testing.T) {
	tests := []struct {
		from    lifecycle.BookingStatus
		to      lifecycle.BookingStatus
		wantErr bool
	}{
		{from: lifecycle.BookingPending, to: lifecycle.BookingConfirmed},
		{from: lifecycle.BookingPending, to: lifecycle.BookingCancelled},
		{from: lifecycle.BookingConfirmed, to: lifecycle.BookingCancelled},
		{from: lifecycle.BookingConfirmed, to: lifecycle.BookingCompleted},
		{from: lifecycle.BookingConfirmed, to: lifecycle.BookingNoShow},
		{from: lifecycle.BookingConfirmed, to: lifecycle.BookingPending, wantErr: true},
		{from: lifecycle.BookingPending, to: lifecycle.BookingCompleted, wantErr: true},
		{from: lifecycle.BookingPending, to: lifecycle.BookingNoShow, wantErr: true},
		{from: lifecycle.BookingCancelled, to: lifecycle.BookingConfirmed, wantErr: true},
		{from: lifecycle.BookingCompleted, to: lifecycle.BookingCancelled, wantErr: true},
		{from: lifecycle.BookingNoShow, to: lifecycle.BookingCompleted, wantErr: true},
		{from: lifecycle.BookingPending, to: lifecycle.BookingPending, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := lifecycle.TransitionBooking(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, lifecycle.BookingCompleted.Terminal())
	assert.True(t, lifecycle.BookingCancelled.Terminal())
	assert.True(t, lifecycle.BookingNoShow.Terminal())
	assert.False(t, lifecycle.BookingPending.Terminal())
	assert.False(t, lifecycle.BookingConfirmed.Terminal())
	assert.False(t, lifecycle.BookingStatus("archived").Terminal())

	assert.True(t, lifecycle.BookingPending.Blocking())
	assert.True(t, lifecycle.BookingConfirmed.Blocking())
	assert.False(t, lifecycle.BookingCancelled.Blocking())
}

func TestTransitionRental(t *testing.T) {
	legal := [][2]lifecycle.RentalStatus{
		{lifecycle.RentalPendingDeposit, lifecycle.RentalDepositPaid},
		{lifecycle.RentalPendingDeposit, lifecycle.RentalCancelled},
		{lifecycle.RentalDepositPaid, lifecycle.RentalCheckedOut},
		{lifecycle.RentalDepositPaid, lifecycle.RentalCancelled},
		{lifecycle.RentalCheckedOut, lifecycle.RentalReturned},
		{lifecycle.RentalCheckedOut, lifecycle.RentalOverdue},
		{lifecycle.RentalOverdue, lifecycle.RentalReturned},
		{lifecycle.RentalReturned, lifecycle.RentalCompleted},
	}
	for _, pair := range legal {
		assert.NoError(t, lifecycle.TransitionRental(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	illegal := [][2]lifecycle.RentalStatus{
		{lifecycle.RentalCheckedOut, lifecycle.RentalCancelled},
		{lifecycle.RentalOverdue, lifecycle.RentalCheckedOut},
		{lifecycle.RentalCompleted, lifecycle.RentalReturned},
		{lifecycle.RentalCancelled, lifecycle.RentalPendingDeposit},
		{lifecycle.RentalPendingDeposit, lifecycle.RentalCheckedOut},
	}
	for _, pair := range illegal {
		assert.ErrorIs(t, lifecycle.TransitionRental(pair[0], pair[1]), failure.ErrInvalidTransition, "%s -> %s", pair[0], pair[1])
	}
}

func TestRentalStatus_Holding(t *testing.T) {
	for _, s := range lifecycle.HoldingRentalStatuses() {
		assert.True(t, s.Holding(), s)
		assert.False(t, s.Terminal(), s)
	}

	assert.False(t, lifecycle.RentalReturned.Holding())
	assert.False(t, lifecycle.RentalCompleted.Holding())
	assert.False(t, lifecycle.RentalCancelled.Holding())
}

func TestCheckCancellationWindow(t *testing.T) {
	start := time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)
	window := 24 * time.Hour
	customer := lifecycle.Actor{ID: uuid.New(), Role: constant.RoleCustomer}
	manager := lifecycle.Actor{ID: uuid.New(), Role: constant.RoleManager}

	tests := []struct {
		name    string
		now     time.Time
		window  time.Duration
		actor   lifecycle.Actor
		wantErr bool
	}{
		{name: "well before window", now: start.Add(-48 * time.Hour), window: window, actor: customer},
		{name: "exactly at deadline", now: start.Add(-window), window: window, actor: customer},
		{name: "inside window", now: start.Add(-time.Hour), window: window, actor: customer, wantErr: true},
		{name: "manager overrides", now: start.Add(-time.Hour), window: window, actor: manager},
		{name: "superadmin overrides", now: start.Add(-time.Hour), window: window, actor: lifecycle.Actor{Role: constant.RoleSuperAdmin}},
		{name: "staff does not override", now: start.Add(-time.Hour), window: window, actor: lifecycle.Actor{Role: constant.RoleStaff}, wantErr: true},
		{name: "no window configured", now: start.Add(-time.Minute), actor: customer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lifecycle.CheckCancellationWindow(start, tt.now, tt.window, tt.actor)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrPolicyViolation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActor_String(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id.String(), lifecycle.Actor{ID: id, Role: constant.RoleStaff}.String())
	assert.Equal(t, constant.ContextSystem, lifecycle.System.String())
	assert.True(t, lifecycle.System.CanOverride())
	assert.False(t, lifecycle.Actor{Role: constant.RoleCustomer}.IsStaff())
}
