package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared/model"
)

const (
	WorkingHourTableName  = "working_hours"
	WorkingHourEntityName = "working_hour"

	ExceptionTableName  = "availability_exceptions"
	ExceptionEntityName = "availability_exception"

	ServiceTableName  = "services"
	ServiceEntityName = "service"

	FieldWeekday         = "weekday"
	FieldStartMinute     = "start_minute"
	FieldEndMinute       = "end_minute"
	FieldExceptionDate   = "exception_date"
	FieldClosed          = "closed"
	FieldRanges          = "ranges"
	FieldDurationMinutes = "duration_minutes"
)

// WorkingHour is one open range of a weekday. A weekday may hold several.
type WorkingHour struct {
	ID          uuid.UUID `db:"id"`
	ResourceID  uuid.UUID `db:"resource_id"`
	Weekday     int       `db:"weekday"`
	StartMinute int       `db:"start_minute"`
	EndMinute   int       `db:"end_minute"`
	model.Metadata
}

// Exception replaces the working hours of one date. Ranges holds []policy.Range as JSON.
type Exception struct {
	ID            uuid.UUID      `db:"id"`
	ResourceID    uuid.UUID      `db:"resource_id"`
	ExceptionDate time.Time      `db:"exception_date"`
	Closed        bool           `db:"closed"`
	Ranges        types.JSONText `db:"ranges"`
	model.Metadata
}

func (e Exception) ToPolicy() (policy.Exception, error) {
	var ranges []policy.Range

	if len(e.Ranges) > 0 {
		if err := json.Unmarshal(e.Ranges, &ranges); err != nil {
			return policy.Exception{}, fmt.Errorf("failed to decode exception ranges: %w", err)
		}
	}

	return policy.Exception{
		Date:   policy.DateOf(e.ExceptionDate, time.UTC),
		Closed: e.Closed,
		Ranges: ranges,
	}, nil
}

// Service is what a customer books; only its duration matters here.
type Service struct {
	ID              uuid.UUID `db:"id"`
	BusinessID      uuid.UUID `db:"business_id"`
	Name            string    `db:"name"`
	DurationMinutes int       `db:"duration_minutes"`
	Active          bool      `db:"active"`
	model.Metadata
}

func WorkingHoursOf(rows []WorkingHour) policy.WorkingHours {
	hours := policy.WorkingHours{}

	for _, row := range rows {
		weekday := time.Weekday(row.Weekday)
		hours[weekday] = append(hours[weekday], policy.Range{Start: policy.Minute(row.StartMinute), End: policy.Minute(row.EndMinute)})
	}

	return hours
}
