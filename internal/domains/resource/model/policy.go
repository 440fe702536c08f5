package model

import (
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared/model"
)

const (
	PolicyTableName  = "booking_policies"
	PolicyEntityName = "booking_policy"

	FieldBufferMinutes             = "buffer_minutes"
	FieldMinAdvanceMinutes         = "min_advance_minutes"
	FieldMaxAdvanceDays            = "max_advance_days"
	FieldMaxDailyBookings          = "max_daily_bookings"
	FieldGranularityMinutes        = "granularity_minutes"
	FieldUseFixedIntervals         = "use_fixed_intervals"
	FieldCancellationWindowMinutes = "cancellation_window_minutes"
	FieldAutoConfirm               = "auto_confirm"
)

// BookingPolicy is the business default when ResourceID is null, a resource override otherwise.
type BookingPolicy struct {
	ID                        uuid.UUID     `db:"id"`
	BusinessID                uuid.UUID     `db:"business_id"`
	ResourceID                uuid.NullUUID `db:"resource_id"`
	BufferMinutes             int           `db:"buffer_minutes"`
	MinAdvanceMinutes         int           `db:"min_advance_minutes"`
	MaxAdvanceDays            int           `db:"max_advance_days"`
	MaxDailyBookings          int           `db:"max_daily_bookings"`
	GranularityMinutes        int           `db:"granularity_minutes"`
	UseFixedIntervals         bool          `db:"use_fixed_intervals"`
	CancellationWindowMinutes int           `db:"cancellation_window_minutes"`
	AutoConfirm               bool          `db:"auto_confirm"`
	model.Metadata
}

func (p BookingPolicy) ToPolicy() policy.Policy {
	return policy.Policy{
		Buffer:             time.Duration(p.BufferMinutes) * time.Minute,
		MinAdvance:         time.Duration(p.MinAdvanceMinutes) * time.Minute,
		MaxAdvanceDays:     p.MaxAdvanceDays,
		MaxDailyBookings:   p.MaxDailyBookings,
		Granularity:        time.Duration(p.GranularityMinutes) * time.Minute,
		UseFixedIntervals:  p.UseFixedIntervals,
		CancellationWindow: time.Duration(p.CancellationWindowMinutes) * time.Minute,
		AutoConfirm:        p.AutoConfirm,
	}
}

// EffectivePolicy picks the resource override over the business default. No row means the
// zero policy: no buffer, no notice, continuous starts.
func EffectivePolicy(rows []BookingPolicy) policy.Policy {
	var business *BookingPolicy

	for i := range rows {
		if rows[i].ResourceID.Valid {
			return rows[i].ToPolicy()
		}

		business = &rows[i]
	}

	if business == nil {
		return policy.Policy{}
	}

	return business.ToPolicy()
}
