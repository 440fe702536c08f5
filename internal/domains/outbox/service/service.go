package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/infras/kafka"
	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/outbox/model"
	"slotkeeper/internal/domains/outbox/repository"
	"slotkeeper/internal/reservation"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/timezone"
)

type Outbox interface {
	// Record writes an event in the caller's transaction, so it is published only if the
	// reservation change commits.
	Record(ctx context.Context, sqltx *sqlx.Tx, eventType string, payload model.Reservation) error
	// PublishPending leases one batch of unpublished events, sends it in creation order and returns
	// how many went out. Only the events before the first failure are marked published; the rest
	// are released for the next run.
	PublishPending(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo    repository.Outbox
	manager reservation.Manager
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Outbox, manager reservation.Manager, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Outbox {
	return &serviceImpl{
		repo:    repo,
		manager: manager,
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, sqltx *sqlx.Tx, eventType string, payload model.Reservation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".outbox.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := model.NewEvent(ctx, eventType, payload)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, sqltx, event); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to record outbox event")

		return fmt.Errorf("failed to record %s: %w", eventType, err)
	}

	return nil
}

func (s *serviceImpl) PublishPending(ctx context.Context) (published int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".outbox.PublishPending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	lease := time.Duration(s.cfg.Jobs.OutboxLeaseSeconds) * time.Second

	var events []model.Event

	err = s.manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) (err error) {
		events, err = s.repo.LeasePendingTx(ctx, tx, s.cfg.Jobs.OutboxBatchSize, now, now.Add(lease))

		return err // nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to lease outbox batch")

		return 0, fmt.Errorf("failed to lease outbox batch: %w", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	// The broker is called outside any transaction; the lease keeps other publishers off these rows.
	sendErr := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Reservations, messages(events)...)
	delivered := kafka.Delivered(sendErr, len(events))

	ids := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}

	if sendErr != nil {
		log.Warn().Err(sendErr).Int("delivered", delivered).Int("pending", len(events)-delivered).
			Msg("failed to publish outbox batch")
	}

	err = s.manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if delivered > 0 {
			if err := s.repo.MarkPublishedTx(ctx, tx, ids[:delivered], timezone.Now()); err != nil {
				return err // nolint:wrapcheck
			}
		}

		if sendErr != nil {
			return s.repo.MarkFailedTx(ctx, tx, ids[delivered:], sendErr.Error()) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("delivered", delivered).Msg("failed to settle outbox batch")

		return 0, fmt.Errorf("failed to settle outbox batch: %w", err)
	}

	if sendErr != nil {
		return delivered, fmt.Errorf("failed to publish outbox event: %w", sendErr)
	}

	return delivered, nil
}

// messages keeps the batch in creation order and stamps each message with the trace context of
// the request that recorded it.
func messages(events []model.Event) []kafka.Message {
	msgs := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		headers := event.TraceHeaders()
		headers[kafka.HeaderEventID] = event.ID.String()
		headers[kafka.HeaderEventType] = event.EventType

		msgs = append(msgs, kafka.Message{
			Key:     event.AggregateID.String(),
			Value:   json.RawMessage(event.Payload),
			Headers: headers,
		})
	}

	return msgs
}
