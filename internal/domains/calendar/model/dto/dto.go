package dto

import (
	"time"

	"github.com/google/uuid"

	"slotkeeper/internal/domains/calendar/model"
	"slotkeeper/internal/scheduling/interval"
	gModel "slotkeeper/shared/model"
)

// BusyEntry is one event as the calendar provider reported it.
type BusyEntry struct {
	ExternalID string    `json:"external_id" validate:"omitempty,max=255"`
	Start      time.Time `json:"start"       validate:"required"`
	End        time.Time `json:"end"         validate:"required,gtfield=Start"`
}

// ImportBusyRequest replaces every imported event of a connection overlapping [From, To)
// with Intervals.
type ImportBusyRequest struct {
	From      time.Time   `json:"from"      validate:"required"`
	To        time.Time   `json:"to"        validate:"required,gtfield=From"`
	Intervals []BusyEntry `json:"intervals" validate:"dive"`
}

func (r ImportBusyRequest) Window() interval.Interval {
	return interval.Interval{Start: r.From, End: r.To}
}

func (r ImportBusyRequest) ToModels(connectionID uuid.UUID, now time.Time, actor string) []model.BusyInterval {
	models := make([]model.BusyInterval, len(r.Intervals))
	for i, entry := range r.Intervals {
		models[i] = model.BusyInterval{
			ID:           uuid.New(),
			ConnectionID: connectionID,
			ExternalID:   entry.ExternalID,
			StartAt:      entry.Start,
			EndAt:        entry.End,
			Metadata:     gModel.NewMetadata(now, actor),
		}
	}

	return models
}

// BusySync is the message the calendar sync publishes for one connection and window.
type BusySync struct {
	BusinessID   uuid.UUID `json:"business_id"`
	ConnectionID uuid.UUID `json:"connection_id"`
	ImportBusyRequest
}

type ImportBusyResponse struct {
	ConnectionID uuid.UUID `json:"connection_id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Imported     int       `json:"imported"`
	SyncedAt     time.Time `json:"synced_at"`
}
