package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"slotkeeper/internal/scheduling/interval"
)

const (
	TableName  = "outbox_events"
	EntityName = "outbox_event"

	FieldID          = "id"
	FieldPublishedAt = "published_at"
	FieldCreatedAt   = "created_at"
	FieldAttempts    = "attempts"
	FieldLastError   = "last_error"
	FieldLeasedUntil = "leased_until"
)

const (
	AggregateBooking = "booking"
	AggregateRental  = "rental"
)

const (
	EventReservationCreated       = "ReservationCreated"
	EventReservationCancelled     = "ReservationCancelled"
	EventReservationRescheduled   = "ReservationRescheduled"
	EventReservationStatusChanged = "ReservationStatusChanged"
)

// Event is a row of the transactional outbox. Headers hold the W3C trace context of the request
// that wrote it. A publisher leases the rows it is sending until LeasedUntil.
type Event struct {
	ID            uuid.UUID      `db:"id"`
	AggregateType string         `db:"aggregate_type"`
	AggregateID   uuid.UUID      `db:"aggregate_id"`
	EventType     string         `db:"event_type"`
	Payload       types.JSONText `db:"payload"`
	Headers       types.JSONText `db:"headers"`
	CreatedAt     time.Time      `db:"created_at"`
	PublishedAt   sql.NullTime   `db:"published_at"`
	Attempts      int            `db:"attempts"`
	LastError     string         `db:"last_error"`
	LeasedUntil   sql.NullTime   `db:"leased_until"`
}

// Reservation is the payload of every reservation event, bookings and rentals alike.
type Reservation struct {
	ReservationID    uuid.UUID          `json:"reservation_id"`
	Kind             string             `json:"kind"`
	BusinessID       uuid.UUID          `json:"business_id"`
	ResourceID       uuid.UUID          `json:"resource_id"`
	Interval         interval.Interval  `json:"interval"`
	Quantity         int                `json:"quantity"`
	Status           string             `json:"status"`
	PreviousStatus   string             `json:"previous_status,omitempty"`
	Reason           string             `json:"reason,omitempty"`
	ActorID          string             `json:"actor_id,omitempty"`
	PreviousInterval *interval.Interval `json:"previous_interval,omitempty"`
	OccurredAt       time.Time          `json:"occurred_at"`
}

func NewEvent(ctx context.Context, eventType string, payload Reservation) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers, err := json.Marshal(carrier)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s headers: %w", eventType, err)
	}

	return Event{
		ID:            uuid.New(),
		AggregateType: payload.Kind,
		AggregateID:   payload.ReservationID,
		EventType:     eventType,
		Payload:       types.JSONText(body),
		Headers:       types.JSONText(headers),
		CreatedAt:     payload.OccurredAt,
	}, nil
}

// TraceHeaders returns the trace context stored with the event as message headers.
func (e Event) TraceHeaders() map[string]string {
	carrier := propagation.MapCarrier{}
	if len(e.Headers) > 0 {
		if err := json.Unmarshal(e.Headers, &carrier); err != nil || carrier == nil {
			return map[string]string{}
		}
	}

	return carrier
}

// TraceContext returns ctx carrying the trace context stored with the event.
func (e Event) TraceContext(ctx context.Context) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(e.TraceHeaders()))
}
