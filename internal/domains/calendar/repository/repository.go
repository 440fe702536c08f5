package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/calendar/model"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	gRepo "slotkeeper/shared/repository"
)

type Connection interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Connection, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Connection, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type Busy interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BusyInterval) error
	// DeleteWindowTx drops the imported events of a connection overlapping window and reports how many went.
	DeleteWindowTx(ctx context.Context, sqltx *sqlx.Tx, connectionID uuid.UUID, window interval.Interval) (int64, error)
}

type connectionRepository struct {
	gRepo.Repository[model.Connection]
}

func NewConnection(db *postgres.Connection, otel otel.Otel) Connection {
	return &connectionRepository{
		Repository: gRepo.NewRepository[model.Connection](model.ConnectionEntityName, model.ConnectionTableName, model.FieldID, db, otel),
	}
}

type busyRepository struct {
	gRepo.Repository[model.BusyInterval]
	otel otel.Otel
}

func NewBusy(db *postgres.Connection, otel otel.Otel) Busy {
	return &busyRepository{
		Repository: gRepo.NewRepository[model.BusyInterval](model.BusyEntityName, model.BusyTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *busyRepository) DeleteWindowTx(ctx context.Context, sqltx *sqlx.Tx, connectionID uuid.UUID, window interval.Interval) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".calendar.DeleteWindowTx")
	defer scope.End()

	result, err := gRepo.Exec(ctx, scope, sqltx, deleteWindowQuery(connectionID, window))
	if err != nil {
		return 0, fmt.Errorf("failed to delete busy intervals: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted busy intervals: %w", err)
	}

	return deleted, nil
}

func deleteWindowQuery(connectionID uuid.UUID, window interval.Interval) squirrel.DeleteBuilder {
	return gRepo.Psql.
		Delete(model.BusyTableName).
		Where(squirrel.Eq{model.FieldConnectionID: connectionID}).
		Where(squirrel.Lt{model.FieldStartAt: window.End}).
		Where(squirrel.Gt{model.FieldEndAt: window.Start})
}
