package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/calendar/model"
	"slotkeeper/internal/domains/calendar/model/dto"
	"slotkeeper/internal/domains/calendar/repository"
	"slotkeeper/internal/reservation"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared"
	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/shared/timezone"
)

const hoursPerDay = 24

type Calendar interface {
	// ImportBusy replaces the imported events of a connection inside the request window and
	// stamps the connection as synced.
	ImportBusy(ctx context.Context, actor lifecycle.Actor, businessID, connectionID uuid.UUID, req dto.ImportBusyRequest) (dto.ImportBusyResponse, error)
}

type serviceImpl struct {
	connections repository.Connection
	busy        repository.Busy
	manager     reservation.Manager
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(connections repository.Connection, busy repository.Busy, manager reservation.Manager, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		connections: connections,
		busy:        busy,
		manager:     manager,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) ImportBusy(ctx context.Context, actor lifecycle.Actor, businessID, connectionID uuid.UUID, req dto.ImportBusyRequest) (res dto.ImportBusyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.ImportBusy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window := req.Window()
	if !window.Valid() {
		return res, failure.BadRequestFromString("sync window must end after it starts") // nolint:wrapcheck
	}

	if maxDays := s.cfg.Scheduling.MaxRangeDays; window.Duration() > time.Duration(maxDays)*hoursPerDay*time.Hour {
		return res, fmt.Errorf("%w: at most %d days per import", failure.ErrRangeTooLarge, maxDays)
	}

	for _, entry := range req.Intervals {
		if !entry.Start.Before(entry.End) {
			return res, failure.BadRequestFromString(fmt.Sprintf("busy interval %q must end after it starts", entry.ExternalID)) // nolint:wrapcheck
		}
	}

	filter := shared.FilterByBusiness(businessID, connectionID, model.ConnectionTableName)

	connection, err := s.connections.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get calendar connection: %w", err)
	}

	if connection.ID == uuid.Nil {
		return res, failure.Wrap(failure.ErrResourceNotFound, "calendar connection %s", connectionID) // nolint:wrapcheck
	}

	now := timezone.Now()
	intervals := req.ToModels(connectionID, now, actor.String())

	var deleted int64

	err = s.manager.Commit(ctx, s.claim(connection.ResourceID, window, req.Intervals), func(ctx context.Context, tx *sqlx.Tx) error {
		locked, err := s.connections.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock calendar connection: %w", err)
		}

		switch {
		case locked.ID == uuid.Nil:
			return failure.Wrap(failure.ErrResourceNotFound, "calendar connection %s", connectionID) // nolint:wrapcheck
		case locked.ResourceID != connection.ResourceID:
			return failure.Wrap(failure.ErrReservationContended, "calendar connection %s moved to another resource", connectionID) // nolint:wrapcheck
		}

		if deleted, err = s.busy.DeleteWindowTx(ctx, tx, connectionID, window); err != nil {
			return err // nolint:wrapcheck
		}

		if err = s.busy.InsertBulkTx(ctx, tx, intervals); err != nil {
			return fmt.Errorf("failed to insert busy intervals: %w", err)
		}

		mod := map[string]any{
			model.FieldLastSyncedAt:  now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.String(),
		}

		return s.connections.UpdateTx(ctx, tx, mod, shared.FilterByID(connectionID, model.FieldID, model.ConnectionTableName)) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("connection_id", connectionID.String()).Msg("failed to import busy intervals")

		return res, err // nolint:wrapcheck
	}

	log.Info().
		Str("connection_id", connectionID.String()).
		Int64("replaced", deleted).
		Int("imported", len(intervals)).
		Msg("imported busy intervals")

	if err := shared.InvalidateAvailability(context.WithoutCancel(ctx), s.cache, connection.ResourceID); err != nil {
		log.Warn().Err(err).Msg("availability cache may serve stale entries until the next write")
	}

	return dto.ImportBusyResponse{
		ConnectionID: connectionID,
		ResourceID:   connection.ResourceID,
		Imported:     len(intervals),
		SyncedAt:     now,
	}, nil
}

// claim covers the sync window and every imported event, so a reservation that could collide with
// an event waits for the import to commit.
func (s *serviceImpl) claim(resourceID uuid.UUID, window interval.Interval, entries []dto.BusyEntry) reservation.Claim {
	span := window

	for _, entry := range entries {
		if entry.Start.Before(span.Start) {
			span.Start = entry.Start
		}

		if entry.End.After(span.End) {
			span.End = entry.End
		}
	}

	return reservation.Claim{
		Scope:  reservation.ScopeStaff,
		ID:     resourceID,
		Window: span,
		Bucket: time.Duration(s.cfg.Reservation.LockBucketMinutes) * time.Minute,
	}
}
