package model

import (
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldBusinessID   = "business_id"
	FieldResourceID   = "resource_id"
	FieldServiceID    = "service_id"
	FieldCustomerID   = "customer_id"
	FieldStartAt      = "start_at"
	FieldEndAt        = "end_at"
	FieldBlockedUntil = "blocked_until"
	FieldStatus       = "status"
	FieldCancelReason = "cancel_reason"
	FieldCancelledBy  = "cancelled_by"
)

// Booking holds one resource for [StartAt, EndAt). BlockedUntil is EndAt plus the buffer in force
// when the booking was written and is what the exclusion constraint guards.
type Booking struct {
	ID           uuid.UUID               `db:"id"`
	BusinessID   uuid.UUID               `db:"business_id"`
	ResourceID   uuid.UUID               `db:"resource_id"`
	ServiceID    uuid.UUID               `db:"service_id"`
	CustomerID   uuid.UUID               `db:"customer_id"`
	StartAt      time.Time               `db:"start_at"`
	EndAt        time.Time               `db:"end_at"`
	BlockedUntil time.Time               `db:"blocked_until"`
	Status       lifecycle.BookingStatus `db:"status"`
	CancelReason string                  `db:"cancel_reason"`
	CancelledBy  string                  `db:"cancelled_by"`
	model.Metadata
}

func (b Booking) Interval() interval.Interval {
	return interval.Interval{Start: b.StartAt, End: b.EndAt}
}
