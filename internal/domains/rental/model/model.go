package model

import (
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/ledger"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/model"
)

const (
	ProductTableName  = "products"
	ProductEntityName = "product"

	TableName  = "rental_bookings"
	EntityName = "rental"

	FieldID           = "id"
	FieldBusinessID   = "business_id"
	FieldProductID    = "product_id"
	FieldCustomerID   = "customer_id"
	FieldStartAt      = "start_at"
	FieldEndAt        = "end_at"
	FieldQuantity     = "quantity"
	FieldStatus       = "status"
	FieldLockVersion  = "lock_version"
	FieldCancelReason = "cancel_reason"
	FieldCancelledBy  = "cancelled_by"
	FieldActive       = "active"
)

// Product is a quantity-backed resource. RentalQuantityAvailable units exist at any instant.
type Product struct {
	ID                      uuid.UUID `db:"id"`
	BusinessID              uuid.UUID `db:"business_id"`
	Name                    string    `db:"name"`
	Timezone                string    `db:"timezone"`
	RentalQuantityAvailable int       `db:"rental_quantity_available"`
	Active                  bool      `db:"active"`
	model.Metadata
}

// Rental holds Quantity units of a product over [StartAt, EndAt). LockVersion guards status writes.
type Rental struct {
	ID           uuid.UUID              `db:"id"`
	BusinessID   uuid.UUID              `db:"business_id"`
	ProductID    uuid.UUID              `db:"product_id"`
	CustomerID   uuid.UUID              `db:"customer_id"`
	StartAt      time.Time              `db:"start_at"`
	EndAt        time.Time              `db:"end_at"`
	Quantity     int                    `db:"quantity"`
	Status       lifecycle.RentalStatus `db:"status"`
	LockVersion  int                    `db:"lock_version"`
	CancelReason string                 `db:"cancel_reason"`
	CancelledBy  string                 `db:"cancelled_by"`
	model.Metadata
}

func (r Rental) Interval() interval.Interval {
	return interval.Interval{Start: r.StartAt, End: r.EndAt}
}

// Hold is what the rental takes from the pool. Overdue units stay out until they come back.
func (r Rental) Hold(now time.Time) ledger.Hold {
	if r.Status == lifecycle.RentalOverdue {
		return ledger.Overdue(r.Interval(), r.Quantity, now)
	}

	return ledger.Hold{Interval: r.Interval(), Quantity: r.Quantity}
}

func Holds(rentals []Rental, now time.Time) []ledger.Hold {
	holds := make([]ledger.Hold, 0, len(rentals))
	for _, r := range rentals {
		if r.Status.Holding() {
			holds = append(holds, r.Hold(now))
		}
	}

	return holds
}
