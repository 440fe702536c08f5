package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
)

// WindowQuery is a from/to pair of RFC3339 instants taken from the query string.
type WindowQuery struct {
	From string `validate:"required"`
	To   string `validate:"required"`
}

func (q *WindowQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.From = values.Get(constant.RequestParamFrom)
	q.To = values.Get(constant.RequestParamTo)
}

func (q WindowQuery) ToInterval() (interval.Interval, error) {
	from, err := time.Parse(time.RFC3339, q.From)
	if err != nil {
		return interval.Interval{}, failure.BadRequestFromString(fmt.Sprintf("from must be an RFC3339 instant: %q", q.From))
	}

	to, err := time.Parse(time.RFC3339, q.To)
	if err != nil {
		return interval.Interval{}, failure.BadRequestFromString(fmt.Sprintf("to must be an RFC3339 instant: %q", q.To))
	}

	window, err := interval.New(from, to)
	if err != nil {
		return interval.Interval{}, failure.BadRequest(err)
	}

	return window, nil
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID           `json:"resource_id"`
	Timezone   string              `json:"timezone"`
	Intervals  []interval.Interval `json:"intervals"`
}

type SlotsResponse struct {
	ResourceID      uuid.UUID           `json:"resource_id"`
	ServiceID       uuid.UUID           `json:"service_id"`
	Timezone        string              `json:"timezone"`
	DurationMinutes int                 `json:"duration_minutes"`
	Slots           []interval.Interval `json:"slots"`
}
