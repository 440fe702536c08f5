package repository

//go:generate go run go.uber.org/mock/mockgen -source=./schedule.go -destination=../mocks/schedule_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/resource/model"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	gRepo "slotkeeper/shared/repository"
)

type WorkingHour interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WorkingHour, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.WorkingHour) error
}

type Exception interface {
	// Between returns the exceptions of a resource dated within [from, to].
	Between(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]model.Exception, error)
	Upsert(ctx context.Context, exception model.Exception) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Service interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
}

type workingHourRepository struct {
	gRepo.Repository[model.WorkingHour]
}

func NewWorkingHour(db *postgres.Connection, otel otel.Otel) WorkingHour {
	return &workingHourRepository{
		Repository: gRepo.NewRepository[model.WorkingHour](model.WorkingHourEntityName, model.WorkingHourTableName, model.FieldID, db, otel),
	}
}

type exceptionRepository struct {
	gRepo.Repository[model.Exception]
	db   *postgres.Connection
	otel otel.Otel
}

func NewException(db *postgres.Connection, otel otel.Otel) Exception {
	return &exceptionRepository{
		Repository: gRepo.NewRepository[model.Exception](model.ExceptionEntityName, model.ExceptionTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *exceptionRepository) Between(ctx context.Context, resourceID uuid.UUID, from, to time.Time) (rows []model.Exception, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".exception.Between")
	defer scope.End()

	query := gRepo.Psql.
		Select("*").
		From(model.ExceptionTableName).
		Where(squirrel.Eq{model.FieldResourceID: resourceID}).
		Where(squirrel.GtOrEq{model.FieldExceptionDate: from.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{model.FieldExceptionDate: to.Format(time.DateOnly)})

	if err = gRepo.Select(ctx, scope, r.db.Read, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get availability exceptions: %w", err)
	}

	return rows, nil
}

func (r *exceptionRepository) Upsert(ctx context.Context, exception model.Exception) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".exception.Upsert")
	defer scope.End()

	query := gRepo.Psql.
		Insert(model.ExceptionTableName).
		SetMap(map[string]any{
			model.FieldID:            exception.ID,
			model.FieldResourceID:    exception.ResourceID,
			model.FieldExceptionDate: exception.ExceptionDate.Format(time.DateOnly),
			model.FieldClosed:        exception.Closed,
			model.FieldRanges:        string(exception.Ranges),
			constant.FieldCreatedAt:  exception.CreatedAt,
			constant.FieldCreatedBy:  exception.CreatedBy,
			constant.FieldModifiedAt: exception.ModifiedAt,
			constant.FieldModifiedBy: exception.ModifiedBy,
		}).
		Suffix("ON CONFLICT (resource_id, exception_date) DO UPDATE SET " + excludedAssignments([]string{
			model.FieldClosed,
			model.FieldRanges,
			constant.FieldModifiedAt,
			constant.FieldModifiedBy,
		}))

	if _, err = gRepo.Exec(ctx, scope, r.db.Write, query); err != nil {
		return fmt.Errorf("failed to upsert availability exception: %w", err)
	}

	return nil
}

type serviceRepository struct {
	gRepo.Repository[model.Service]
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceRepository{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
	}
}
