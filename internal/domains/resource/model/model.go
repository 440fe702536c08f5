package model

import (
	"github.com/google/uuid"

	"slotkeeper/shared/model"
)

const (
	BusinessTableName  = "businesses"
	BusinessEntityName = "business"

	TableName  = "resources"
	EntityName = "resource"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldResourceID = "resource_id"
	FieldName       = "name"
	FieldTimezone   = "timezone"
	FieldActive     = "active"
)

type Business struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Timezone string    `db:"timezone"`
	model.Metadata
}

// Resource is a bookable staff member. Its timezone anchors working hours and dates.
type Resource struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	Name       string    `db:"name"`
	Timezone   string    `db:"timezone"`
	Active     bool      `db:"active"`
	model.Metadata
}
