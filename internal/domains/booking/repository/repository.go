package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/booking/model"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	gRepo "slotkeeper/shared/repository"
	"slotkeeper/shared/timezone"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	// CompleteDueTx moves up to limit confirmed bookings that ended before cutoff to completed and
	// returns them. Rows locked by a concurrent writer are left for the next sweep.
	CompleteDueTx(ctx context.Context, sqltx *sqlx.Tx, cutoff time.Time, limit int, actor string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CompleteDueTx(ctx context.Context, sqltx *sqlx.Tx, cutoff time.Time, limit int, actor string) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteDueTx")
	defer scope.End()

	var completed []model.Booking
	if err := gRepo.Select(ctx, scope, sqltx, &completed, completeDueQuery(cutoff, limit, actor, timezone.Now())); err != nil {
		return nil, fmt.Errorf("failed to complete due bookings: %w", err)
	}

	return completed, nil
}

func completeDueQuery(cutoff time.Time, limit int, actor string, now time.Time) squirrel.UpdateBuilder {
	// The subquery keeps ? placeholders; the outer Dollar format numbers them after the SET values.
	due := squirrel.
		Select(model.FieldID).
		From(model.TableName).
		Where(squirrel.Eq{model.FieldStatus: lifecycle.BookingConfirmed}).
		Where(squirrel.Lt{model.FieldEndAt: cutoff}).
		OrderBy(model.FieldEndAt).
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	return gRepo.Psql.
		Update(model.TableName).
		Set(model.FieldStatus, lifecycle.BookingCompleted).
		Set(constant.FieldModifiedAt, now).
		Set(constant.FieldModifiedBy, actor).
		Where(squirrel.Expr(model.FieldID+" IN (?)", due)).
		Suffix("RETURNING *")
}
