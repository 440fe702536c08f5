package dto

import (
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/domains/rental/model"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/ledger"
	"slotkeeper/internal/scheduling/lifecycle"
	gDto "slotkeeper/shared/dto"
)

// ReserveRentalRequest takes Quantity units of a product over [Start, End).
// CustomerID is taken from the token for customers and required for staff.
type ReserveRentalRequest struct {
	ProductID  uuid.UUID `json:"product_id"  validate:"required"`
	CustomerID uuid.UUID `json:"customer_id"`
	Start      time.Time `json:"start"       validate:"required"`
	End        time.Time `json:"end"         validate:"required,gtfield=Start"`
	Quantity   int       `json:"quantity"    validate:"required,min=1"`
}

type TransitionRequest struct {
	Status lifecycle.RentalStatus `json:"status" validate:"required"`
	Reason string                 `json:"reason" validate:"omitempty,max=500"`
}

type CapacityResponse struct {
	ProductID uuid.UUID         `json:"product_id"`
	Window    interval.Interval `json:"window"`
	Total     int               `json:"total"`
	Remaining int               `json:"remaining"`
	Timeline  []ledger.Segment  `json:"timeline,omitempty"`
}

type RentalResponse struct {
	ID           uuid.UUID              `json:"id"`
	BusinessID   uuid.UUID              `json:"business_id"`
	ProductID    uuid.UUID              `json:"product_id"`
	CustomerID   uuid.UUID              `json:"customer_id"`
	Start        time.Time              `json:"start"`
	End          time.Time              `json:"end"`
	Quantity     int                    `json:"quantity"`
	Status       lifecycle.RentalStatus `json:"status"`
	CancelReason string                 `json:"cancel_reason,omitempty"`
	CancelledBy  string                 `json:"cancelled_by,omitempty"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(rental model.Rental) {
	r.ID = rental.ID
	r.BusinessID = rental.BusinessID
	r.ProductID = rental.ProductID
	r.CustomerID = rental.CustomerID
	r.Start = rental.StartAt
	r.End = rental.EndAt
	r.Quantity = rental.Quantity
	r.Status = rental.Status
	r.CancelReason = rental.CancelReason
	r.CancelledBy = rental.CancelledBy
	r.Metadata.FromModel(rental.Metadata)
}
