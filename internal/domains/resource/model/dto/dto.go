package dto

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"slotkeeper/internal/domains/resource/model"
	"slotkeeper/internal/scheduling/policy"
	gDto "slotkeeper/shared/dto"
	gModel "slotkeeper/shared/model"
)

type RangeRequest struct {
	Start string `json:"start" validate:"required,timeofday"`
	End   string `json:"end"   validate:"required,timeofday"`
}

func (r RangeRequest) ToRange() (policy.Range, error) {
	start, err := policy.ParseClock(r.Start)
	if err != nil {
		return policy.Range{}, err
	}

	end, err := policy.ParseClock(r.End)
	if err != nil {
		return policy.Range{}, err
	}

	return policy.Range{Start: start, End: end}, nil
}

func toRanges(requests []RangeRequest) ([]policy.Range, error) {
	ranges := make([]policy.Range, 0, len(requests))

	for _, req := range requests {
		r, err := req.ToRange()
		if err != nil {
			return nil, err
		}

		ranges = append(ranges, r)
	}

	return policy.NormalizeRanges(ranges)
}

type DayHoursRequest struct {
	Weekday int            `json:"weekday" validate:"gte=0,lte=6"`
	Ranges  []RangeRequest `json:"ranges"  validate:"dive"`
}

// WorkingHoursRequest replaces the whole week. Weekdays left out are closed.
type WorkingHoursRequest struct {
	Days []DayHoursRequest `json:"days" validate:"dive"`
}

// ToWorkingHours parses and normalizes the week, rejecting overlapping ranges.
func (r WorkingHoursRequest) ToWorkingHours() (policy.WorkingHours, error) {
	hours := policy.WorkingHours{}

	for _, day := range r.Days {
		weekday := time.Weekday(day.Weekday)

		for _, req := range day.Ranges {
			rng, err := req.ToRange()
			if err != nil {
				return nil, err
			}

			hours[weekday] = append(hours[weekday], rng)
		}
	}

	return hours.Normalize()
}

func WorkingHoursToModels(resourceID uuid.UUID, hours policy.WorkingHours, meta gModel.Metadata) []model.WorkingHour {
	rows := []model.WorkingHour{}

	weekdays := make([]time.Weekday, 0, len(hours))
	for weekday := range hours {
		weekdays = append(weekdays, weekday)
	}

	slices.Sort(weekdays)

	for _, weekday := range weekdays {
		for _, rng := range hours[weekday] {
			rows = append(rows, model.WorkingHour{
				ID:          uuid.New(),
				ResourceID:  resourceID,
				Weekday:     int(weekday),
				StartMinute: int(rng.Start),
				EndMinute:   int(rng.End),
				Metadata:    meta,
			})
		}
	}

	return rows
}

// ExceptionRequest replaces the hours of one date. Closed with ranges is rejected.
type ExceptionRequest struct {
	Closed bool           `json:"closed"`
	Ranges []RangeRequest `json:"ranges" validate:"dive"`
}

func (r ExceptionRequest) ToModel(resourceID uuid.UUID, date policy.Date, meta gModel.Metadata) (model.Exception, error) {
	if r.Closed && len(r.Ranges) > 0 {
		return model.Exception{}, fmt.Errorf("%w: a closed date cannot have ranges", policy.ErrInvalidRange)
	}

	if !r.Closed && len(r.Ranges) == 0 {
		return model.Exception{}, fmt.Errorf("%w: an open date needs at least one range", policy.ErrInvalidRange)
	}

	ranges, err := toRanges(r.Ranges)
	if err != nil {
		return model.Exception{}, err
	}

	encoded, err := json.Marshal(ranges)
	if err != nil {
		return model.Exception{}, fmt.Errorf("failed to encode ranges: %w", err)
	}

	return model.Exception{
		ID:            uuid.New(),
		ResourceID:    resourceID,
		ExceptionDate: date.Start(time.UTC),
		Closed:        r.Closed,
		Ranges:        types.JSONText(encoded),
		Metadata:      meta,
	}, nil
}

type PolicyRequest struct {
	BufferMinutes             int  `json:"buffer_minutes"              validate:"gte=0,lte=1440"`
	MinAdvanceMinutes         int  `json:"min_advance_minutes"         validate:"gte=0"`
	MaxAdvanceDays            int  `json:"max_advance_days"            validate:"gte=0,lte=3650"`
	MaxDailyBookings          int  `json:"max_daily_bookings"          validate:"gte=0"`
	GranularityMinutes        int  `json:"granularity_minutes"         validate:"gte=0,lte=1440"`
	UseFixedIntervals         bool `json:"use_fixed_intervals"`
	CancellationWindowMinutes int  `json:"cancellation_window_minutes" validate:"gte=0"`
	AutoConfirm               bool `json:"auto_confirm"`
}

func (r PolicyRequest) ToModel(businessID uuid.UUID, resourceID uuid.NullUUID, meta gModel.Metadata) (model.BookingPolicy, error) {
	row := model.BookingPolicy{
		ID:                        uuid.New(),
		BusinessID:                businessID,
		ResourceID:                resourceID,
		BufferMinutes:             r.BufferMinutes,
		MinAdvanceMinutes:         r.MinAdvanceMinutes,
		MaxAdvanceDays:            r.MaxAdvanceDays,
		MaxDailyBookings:          r.MaxDailyBookings,
		GranularityMinutes:        r.GranularityMinutes,
		UseFixedIntervals:         r.UseFixedIntervals,
		CancellationWindowMinutes: r.CancellationWindowMinutes,
		AutoConfirm:               r.AutoConfirm,
		Metadata:                  meta,
	}

	if err := row.ToPolicy().Validate(); err != nil {
		return model.BookingPolicy{}, err
	}

	return row, nil
}

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayHoursResponse struct {
	Weekday int             `json:"weekday"`
	Ranges  []RangeResponse `json:"ranges"`
}

type PolicyResponse struct {
	BufferMinutes             int  `json:"buffer_minutes"`
	MinAdvanceMinutes         int  `json:"min_advance_minutes"`
	MaxAdvanceDays            int  `json:"max_advance_days"`
	MaxDailyBookings          int  `json:"max_daily_bookings"`
	GranularityMinutes        int  `json:"granularity_minutes"`
	UseFixedIntervals         bool `json:"use_fixed_intervals"`
	CancellationWindowMinutes int  `json:"cancellation_window_minutes"`
	AutoConfirm               bool `json:"auto_confirm"`
}

func (r *PolicyResponse) FromPolicy(p policy.Policy) {
	r.BufferMinutes = int(p.Buffer / time.Minute)
	r.MinAdvanceMinutes = int(p.MinAdvance / time.Minute)
	r.MaxAdvanceDays = p.MaxAdvanceDays
	r.MaxDailyBookings = p.MaxDailyBookings
	r.GranularityMinutes = int(p.Granularity / time.Minute)
	r.UseFixedIntervals = p.UseFixedIntervals
	r.CancellationWindowMinutes = int(p.CancellationWindow / time.Minute)
	r.AutoConfirm = p.AutoConfirm
}

type ResourceResponse struct {
	ID           uuid.UUID          `json:"id"`
	BusinessID   uuid.UUID          `json:"business_id"`
	Name         string             `json:"name"`
	Timezone     string             `json:"timezone"`
	Active       bool               `json:"active"`
	WorkingHours []DayHoursResponse `json:"working_hours"`
	Policy       PolicyResponse     `json:"policy"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(resource model.Resource, hours policy.WorkingHours, effective policy.Policy) {
	r.ID = resource.ID
	r.BusinessID = resource.BusinessID
	r.Name = resource.Name
	r.Timezone = resource.Timezone
	r.Active = resource.Active
	r.Metadata.FromModel(resource.Metadata)
	r.Policy.FromPolicy(effective)

	r.WorkingHours = []DayHoursResponse{}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		ranges, ok := hours[weekday]
		if !ok {
			continue
		}

		day := DayHoursResponse{Weekday: int(weekday), Ranges: make([]RangeResponse, len(ranges))}
		for i, rng := range ranges {
			day.Ranges[i] = RangeResponse{Start: rng.Start.String(), End: rng.End.String()}
		}

		r.WorkingHours = append(r.WorkingHours, day)
	}
}
