package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"slotkeeper/config"
	"slotkeeper/infras/kafka"
	kafkaMocks "slotkeeper/infras/kafka/mocks"
	"slotkeeper/infras/otel/mocks"
	outboxMocks "slotkeeper/internal/domains/outbox/mocks"
	"slotkeeper/internal/domains/outbox/model"
	"slotkeeper/internal/domains/outbox/service"
	"slotkeeper/internal/reservation"
	reservationMocks "slotkeeper/internal/reservation/mocks"
	"slotkeeper/internal/scheduling/interval"
)

const topic = "reservations.events"

type fixture struct {
	repo    *outboxMocks.MockOutbox
	manager *reservationMocks.MockManager
	kafka   *kafkaMocks.MockClient
	svc     service.Outbox

	inTx bool
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:    outboxMocks.NewMockOutbox(ctrl),
		manager: reservationMocks.NewMockManager(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Jobs.OutboxBatchSize = 10
	cfg.Jobs.OutboxLeaseSeconds = 30
	cfg.Kafka.Topic.Reservations = topic

	f.svc = service.New(f.repo, f.manager, f.kafka, cfg, mocks.NewOtel())

	f.manager.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn reservation.TxFunc) error {
			f.inTx = true
			defer func() { f.inTx = false }()

			return fn(ctx, nil)
		}).AnyTimes()

	return f
}

func newEvent(t *testing.T, eventType string) model.Event {
	t.Helper()

	event, err := model.NewEvent(context.Background(), eventType, model.Reservation{
		ReservationID: uuid.New(),
		Kind:          model.AggregateBooking,
		Status:        "pending",
		Interval: interval.Interval{
			Start: time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC),
		},
		OccurredAt: time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return event
}

func TestRecord(t *testing.T) {
	f := newFixture(t)
	payload := model.Reservation{ReservationID: uuid.New(), Kind: model.AggregateRental, Quantity: 2, Status: "pending_deposit"}

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.Event) error {
			assert.Equal(t, model.EventReservationCreated, event.EventType)
			assert.Equal(t, model.AggregateRental, event.AggregateType)
			assert.Equal(t, payload.ReservationID, event.AggregateID)

			var decoded model.Reservation
			require.NoError(t, json.Unmarshal(event.Payload, &decoded))
			assert.Equal(t, 2, decoded.Quantity)

			return nil
		})

	require.NoError(t, f.svc.Record(context.Background(), nil, model.EventReservationCreated, payload))
}

func TestRecord_InsertFails(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	err := f.svc.Record(context.Background(), nil, model.EventReservationCancelled, model.Reservation{ReservationID: uuid.New()})
	require.Error(t, err)
}

func TestPublishPending(t *testing.T) {
	first := newEvent(t, model.EventReservationCreated)
	second := newEvent(t, model.EventReservationCancelled)
	third := newEvent(t, model.EventReservationRescheduled)
	broker := errors.New("not leader for partition")

	tests := []struct {
		name          string
		sendErr       error
		wantPublished []uuid.UUID
		wantFailed    []uuid.UUID
	}{
		{
			name:          "whole batch sent",
			wantPublished: []uuid.UUID{first.ID, second.ID, third.ID},
		},
		{
			name:          "stops at first failure",
			sendErr:       fmt.Errorf("failed to send message to Kafka: %w", kafkaGo.WriteErrors{nil, broker, nil}),
			wantPublished: []uuid.UUID{first.ID},
			wantFailed:    []uuid.UUID{second.ID, third.ID},
		},
		{
			name:       "broker unreachable",
			sendErr:    errors.New("dial tcp: connection refused"),
			wantFailed: []uuid.UUID{first.ID, second.ID, third.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			events := []model.Event{first, second, third}

			f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).Return(events, nil)

			f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					assert.False(t, f.inTx, "the broker is called outside the transaction")
					require.Len(t, messages, len(events))

					for i, event := range events {
						assert.Equal(t, event.AggregateID.String(), messages[i].Key)
						assert.Equal(t, event.ID.String(), messages[i].Headers[kafka.HeaderEventID])
						assert.Equal(t, event.EventType, messages[i].Headers[kafka.HeaderEventType])
					}

					return tt.sendErr
				})

			if len(tt.wantPublished) > 0 {
				f.repo.EXPECT().MarkPublishedTx(gomock.Any(), gomock.Any(), tt.wantPublished, gomock.Any()).Return(nil)
			}

			if len(tt.wantFailed) > 0 {
				f.repo.EXPECT().MarkFailedTx(gomock.Any(), gomock.Any(), tt.wantFailed, tt.sendErr.Error()).Return(nil)
			}

			published, err := f.svc.PublishPending(context.Background())
			if tt.sendErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, len(tt.wantPublished), published)
		})
	}
}

func TestPublishPending_NothingPending(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).Return(nil, nil)

	published, err := f.svc.PublishPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, published)
}

func TestPublishPending_LeaseWindow(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ int, now, until time.Time) ([]model.Event, error) {
			assert.Equal(t, 30*time.Second, until.Sub(now))

			return nil, nil
		})

	_, err := f.svc.PublishPending(context.Background())
	require.NoError(t, err)
}

func TestPublishPending_CarriesStoredTrace(t *testing.T) {
	f := newFixture(t)

	stored := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	event := newEvent(t, model.EventReservationCreated)
	event.Headers = []byte(`{"traceparent":"` + stored + `"}`)

	f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).Return([]model.Event{event}, nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, stored, messages[0].Headers["traceparent"])

			return nil
		})
	f.repo.EXPECT().MarkPublishedTx(gomock.Any(), gomock.Any(), []uuid.UUID{event.ID}, gomock.Any()).Return(nil)

	published, err := f.svc.PublishPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, published)
}

func TestPublishPending_LeaseFails(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	published, err := f.svc.PublishPending(context.Background())
	require.Error(t, err)
	assert.Zero(t, published)
}

func TestPublishPending_SettleFails(t *testing.T) {
	f := newFixture(t)
	event := newEvent(t, model.EventReservationStatusChanged)

	f.repo.EXPECT().LeasePendingTx(gomock.Any(), gomock.Any(), 10, gomock.Any(), gomock.Any()).Return([]model.Event{event}, nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
	f.repo.EXPECT().MarkPublishedTx(gomock.Any(), gomock.Any(), []uuid.UUID{event.ID}, gomock.Any()).Return(errors.New("connection reset"))

	published, err := f.svc.PublishPending(context.Background())
	require.Error(t, err)
	assert.Zero(t, published)
}

func TestEvent_TraceContext(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	event := newEvent(t, model.EventReservationCreated)
	event.Headers = []byte(`{"traceparent":"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"}`)

	spanCtx := trace.SpanContextFromContext(event.TraceContext(context.Background()))

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spanCtx.TraceID().String())
}
