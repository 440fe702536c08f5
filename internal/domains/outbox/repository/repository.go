package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/outbox/model"
	"slotkeeper/shared/constant"
	gRepo "slotkeeper/shared/repository"
)

type Outbox interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, event model.Event) error
	// LeasePendingTx leases up to limit unpublished events until the given time and returns them
	// oldest first. Events under another publisher's live lease are skipped.
	LeasePendingTx(ctx context.Context, sqltx *sqlx.Tx, limit int, now, until time.Time) ([]model.Event, error)
	MarkPublishedTx(ctx context.Context, sqltx *sqlx.Tx, ids []uuid.UUID, at time.Time) error
	// MarkFailedTx records reason on events that were not delivered and releases their lease.
	MarkFailedTx(ctx context.Context, sqltx *sqlx.Tx, ids []uuid.UUID, reason string) error
}

type repositoryImpl struct {
	otel otel.Otel
}

func New(_ *postgres.Connection, otel otel.Otel) Outbox {
	return &repositoryImpl{
		otel: otel,
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, event model.Event) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.InsertTx")
	defer scope.End()

	if _, err := gRepo.Exec(ctx, scope, sqltx, insertQuery(event)); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

func (r *repositoryImpl) LeasePendingTx(ctx context.Context, sqltx *sqlx.Tx, limit int, now, until time.Time) ([]model.Event, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.LeasePendingTx")
	defer scope.End()

	var events []model.Event
	if err := gRepo.Select(ctx, scope, sqltx, &events, leasePendingQuery(limit, now, until)); err != nil {
		return nil, fmt.Errorf("failed to lease outbox events: %w", err)
	}

	// RETURNING does not keep the subquery order.
	slices.SortStableFunc(events, func(a, b model.Event) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return events, nil
}

func (r *repositoryImpl) MarkPublishedTx(ctx context.Context, sqltx *sqlx.Tx, ids []uuid.UUID, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.MarkPublishedTx")
	defer scope.End()

	if len(ids) == 0 {
		return nil
	}

	query := gRepo.Psql.
		Update(model.TableName).
		Set(model.FieldPublishedAt, at).
		Set(model.FieldAttempts, squirrel.Expr(model.FieldAttempts+" + 1")).
		Set(model.FieldLastError, "").
		Set(model.FieldLeasedUntil, nil).
		Where(squirrel.Eq{model.FieldID: ids})

	if _, err := gRepo.Exec(ctx, scope, sqltx, query); err != nil {
		return fmt.Errorf("failed to mark outbox events published: %w", err)
	}

	return nil
}

func (r *repositoryImpl) MarkFailedTx(ctx context.Context, sqltx *sqlx.Tx, ids []uuid.UUID, reason string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.MarkFailedTx")
	defer scope.End()

	if len(ids) == 0 {
		return nil
	}

	query := gRepo.Psql.
		Update(model.TableName).
		Set(model.FieldAttempts, squirrel.Expr(model.FieldAttempts+" + 1")).
		Set(model.FieldLastError, reason).
		Set(model.FieldLeasedUntil, nil).
		Where(squirrel.Eq{model.FieldID: ids})

	if _, err := gRepo.Exec(ctx, scope, sqltx, query); err != nil {
		return fmt.Errorf("failed to record outbox failure: %w", err)
	}

	return nil
}

func insertQuery(event model.Event) squirrel.InsertBuilder {
	// jsonb columns take text; lib/pq would send []byte as bytea.
	return gRepo.Psql.
		Insert(model.TableName).
		Columns("id", "aggregate_type", "aggregate_id", "event_type", "payload", "headers", model.FieldCreatedAt).
		Values(event.ID, event.AggregateType, event.AggregateID, event.EventType, string(event.Payload), string(event.Headers), event.CreatedAt)
}

func leasePendingQuery(limit int, now, until time.Time) squirrel.UpdateBuilder {
	// The subquery keeps ? placeholders; the outer Dollar format numbers them after the SET values.
	pending := squirrel.
		Select(model.FieldID).
		From(model.TableName).
		Where(squirrel.Eq{model.FieldPublishedAt: nil}).
		Where(squirrel.Or{
			squirrel.Eq{model.FieldLeasedUntil: nil},
			squirrel.Lt{model.FieldLeasedUntil: now},
		}).
		OrderBy(model.FieldCreatedAt).
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	return gRepo.Psql.
		Update(model.TableName).
		Set(model.FieldLeasedUntil, until).
		Where(squirrel.Expr(model.FieldID+" IN (?)", pending)).
		Suffix("RETURNING *")
}
