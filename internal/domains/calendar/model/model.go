package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"slotkeeper/shared/model"
)

const (
	ConnectionTableName  = "calendar_connections"
	ConnectionEntityName = "calendar_connection"

	BusyTableName  = "external_busy_intervals"
	BusyEntityName = "external_busy_interval"

	FieldID           = "id"
	FieldBusinessID   = "business_id"
	FieldResourceID   = "resource_id"
	FieldConnectionID = "connection_id"
	FieldExternalID   = "external_id"
	FieldStartAt      = "start_at"
	FieldEndAt        = "end_at"
	FieldLastSyncedAt = "last_synced_at"
)

// Connection links an external calendar to the resource whose time it blocks.
type Connection struct {
	ID           uuid.UUID    `db:"id"`
	BusinessID   uuid.UUID    `db:"business_id"`
	ResourceID   uuid.UUID    `db:"resource_id"`
	Provider     string       `db:"provider"`
	LastSyncedAt sql.NullTime `db:"last_synced_at"`
	model.Metadata
}

// BusyInterval is an imported event. It is never widened by a buffer.
type BusyInterval struct {
	ID           uuid.UUID `db:"id"`
	ConnectionID uuid.UUID `db:"connection_id"`
	ExternalID   string    `db:"external_id"`
	StartAt      time.Time `db:"start_at"`
	EndAt        time.Time `db:"end_at"`
	model.Metadata
}
