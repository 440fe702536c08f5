package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/internal/domains/outbox/model"
	"slotkeeper/internal/domains/outbox/repository"
)

func TestLeasePendingQuery(t *testing.T) {
	now := time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC)
	until := now.Add(30 * time.Second)

	query, args, err := repository.LeasePendingQuery(50, now, until).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE outbox_events SET leased_until = $1 "+
			"WHERE id IN (SELECT id FROM outbox_events WHERE published_at IS NULL AND (leased_until IS NULL OR leased_until < $2) "+
			"ORDER BY created_at LIMIT 50 FOR UPDATE SKIP LOCKED) "+
			"RETURNING *",
		query)
	assert.Equal(t, []any{until, now}, args)
}

func TestInsertQuery(t *testing.T) {
	event := model.Event{
		ID:            uuid.New(),
		AggregateType: model.AggregateBooking,
		AggregateID:   uuid.New(),
		EventType:     model.EventReservationCreated,
		Payload:       types.JSONText(`{"status":"pending"}`),
		Headers:       types.JSONText(`{}`),
		CreatedAt:     time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC),
	}

	query, args, err := repository.InsertQuery(event).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO outbox_events (id,aggregate_type,aggregate_id,event_type,payload,headers,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)", query)
	require.Len(t, args, 7)
	assert.Equal(t, `{"status":"pending"}`, args[4])
}
