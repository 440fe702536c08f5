package dto

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/domains/booking/model"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
)

const (
	queryResourceID = "resource_id"
	queryCustomerID = "customer_id"
	queryStatus     = "status"
)

// ReserveRequest books a service on a resource. The end is derived from the service duration.
// CustomerID is taken from the token for customers and required for staff.
type ReserveRequest struct {
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`
	ServiceID  uuid.UUID `json:"service_id"  validate:"required"`
	CustomerID uuid.UUID `json:"customer_id"`
	Start      time.Time `json:"start"       validate:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// RescheduleRequest moves a booking. When End is omitted the booking keeps its length.
type RescheduleRequest struct {
	Start time.Time  `json:"start" validate:"required"`
	End   *time.Time `json:"end"   validate:"omitempty"`
}

// ListQuery filters the bookings of a business. Times bound the booking start.
type ListQuery struct {
	gDto.QueryParams
	ResourceID uuid.UUID
	CustomerID uuid.UUID
	Status     lifecycle.BookingStatus
	From       time.Time
	To         time.Time
}

func (q *ListQuery) FromRequest(r *http.Request) error {
	q.QueryParams.FromRequest(r, true)

	switch q.SortBy {
	case "":
		q.SortBy = model.FieldStartAt
		q.SortDir = gDto.SortDirAsc
	case model.FieldStartAt, model.FieldEndAt, model.FieldStatus, constant.FieldCreatedAt:
	default:
		return shared.InvalidParam(constant.RequestParamSortBy, q.SortBy)
	}

	if q.SortDir == "" {
		q.SortDir = gDto.SortDirAsc
	}

	values := r.URL.Query()

	var err error

	if q.ResourceID, err = parseUUID(values.Get(queryResourceID)); err != nil {
		return err
	}

	if q.CustomerID, err = parseUUID(values.Get(queryCustomerID)); err != nil {
		return err
	}

	if status := values.Get(queryStatus); status != "" {
		q.Status = lifecycle.BookingStatus(status)
		if !q.Status.Valid() {
			return shared.InvalidParam(queryStatus, status)
		}
	}

	if q.From, err = parseTime(constant.RequestParamFrom, values.Get(constant.RequestParamFrom)); err != nil {
		return err
	}

	if q.To, err = parseTime(constant.RequestParamTo, values.Get(constant.RequestParamTo)); err != nil {
		return err
	}

	return nil
}

func (q ListQuery) Filter(businessID uuid.UUID) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldBusinessID, Value: businessID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if q.ResourceID != uuid.Nil {
		filters = append(filters, gDto.Filter{Field: model.FieldResourceID, Value: q.ResourceID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.CustomerID != uuid.Nil {
		filters = append(filters, gDto.Filter{Field: model.FieldCustomerID, Value: q.CustomerID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Status != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: q.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if !q.From.IsZero() {
		filters = append(filters, gDto.Filter{ArgName: "start_from", Field: model.FieldStartAt, Value: q.From, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if !q.To.IsZero() {
		filters = append(filters, gDto.Filter{ArgName: "start_to", Field: model.FieldStartAt, Value: q.To, Operator: gDto.FilterOperatorLess, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

type BookingResponse struct {
	ID           uuid.UUID               `json:"id"`
	BusinessID   uuid.UUID               `json:"business_id"`
	ResourceID   uuid.UUID               `json:"resource_id"`
	ServiceID    uuid.UUID               `json:"service_id"`
	CustomerID   uuid.UUID               `json:"customer_id"`
	Start        time.Time               `json:"start"`
	End          time.Time               `json:"end"`
	Status       lifecycle.BookingStatus `json:"status"`
	CancelReason string                  `json:"cancel_reason,omitempty"`
	CancelledBy  string                  `json:"cancelled_by,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BusinessID = booking.BusinessID
	r.ResourceID = booking.ResourceID
	r.ServiceID = booking.ServiceID
	r.CustomerID = booking.CustomerID
	r.Start = booking.StartAt
	r.End = booking.EndAt
	r.Status = booking.Status
	r.CancelReason = booking.CancelReason
	r.CancelledBy = booking.CancelledBy
	r.Metadata.FromModel(booking.Metadata)
}

type BookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *BookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, shared.InvalidParam("id", value)
	}

	return id, nil
}

func parseTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.InvalidParam(name, value)
	}

	return t, nil
}
