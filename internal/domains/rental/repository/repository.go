package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/rental/model"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	gRepo "slotkeeper/shared/repository"
	"slotkeeper/shared/timezone"
)

type Product interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
}

type Rental interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Rental) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	// UpdateTxCount reports how many rows matched, so a lock_version filter detects lost updates.
	UpdateTxCount(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	// Holds returns the rentals of a product that hold units somewhere inside window. Overdue
	// rentals are returned whatever their end, since their units are not back yet.
	Holds(ctx context.Context, productID uuid.UUID, window interval.Interval) ([]model.Rental, error)
	HoldsTx(ctx context.Context, sqltx *sqlx.Tx, productID uuid.UUID, window interval.Interval) ([]model.Rental, error)
	// MarkOverdueTx moves up to limit checked out rentals whose end passed before now to overdue.
	MarkOverdueTx(ctx context.Context, sqltx *sqlx.Tx, now time.Time, limit int, actor string) ([]model.Rental, error)
}

type productRepository struct {
	gRepo.Repository[model.Product]
}

func NewProduct(db *postgres.Connection, otel otel.Otel) Product {
	return &productRepository{
		Repository: gRepo.NewRepository[model.Product](model.ProductEntityName, model.ProductTableName, model.FieldID, db, otel),
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Holds(ctx context.Context, productID uuid.UUID, window interval.Interval) ([]model.Rental, error) {
	return r.holds(ctx, r.db.Read, productID, window)
}

func (r *repositoryImpl) HoldsTx(ctx context.Context, sqltx *sqlx.Tx, productID uuid.UUID, window interval.Interval) ([]model.Rental, error) {
	return r.holds(ctx, sqltx, productID, window)
}

func (r *repositoryImpl) holds(ctx context.Context, q sqlx.QueryerContext, productID uuid.UUID, window interval.Interval) ([]model.Rental, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.Holds")
	defer scope.End()

	var rentals []model.Rental
	if err := gRepo.Select(ctx, scope, q, &rentals, holdsQuery(productID, window)); err != nil {
		return nil, fmt.Errorf("failed to get rental holds: %w", err)
	}

	return rentals, nil
}

func (r *repositoryImpl) MarkOverdueTx(ctx context.Context, sqltx *sqlx.Tx, now time.Time, limit int, actor string) ([]model.Rental, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.MarkOverdueTx")
	defer scope.End()

	var overdue []model.Rental
	if err := gRepo.Select(ctx, scope, sqltx, &overdue, markOverdueQuery(now, limit, actor, timezone.Now())); err != nil {
		return nil, fmt.Errorf("failed to mark overdue rentals: %w", err)
	}

	return overdue, nil
}

func holdsQuery(productID uuid.UUID, window interval.Interval) squirrel.SelectBuilder {
	return gRepo.Psql.
		Select(constant.Asterix).
		From(model.TableName).
		Where(squirrel.Eq{model.FieldProductID: productID}).
		Where(squirrel.Eq{model.FieldStatus: lifecycle.HoldingRentalStatuses()}).
		Where(squirrel.Lt{model.FieldStartAt: window.End}).
		Where(squirrel.Or{
			squirrel.Gt{model.FieldEndAt: window.Start},
			squirrel.Eq{model.FieldStatus: lifecycle.RentalOverdue},
		})
}

func markOverdueQuery(due time.Time, limit int, actor string, now time.Time) squirrel.UpdateBuilder {
	// The subquery keeps ? placeholders; the outer Dollar format numbers them after the SET values.
	late := squirrel.
		Select(model.FieldID).
		From(model.TableName).
		Where(squirrel.Eq{model.FieldStatus: lifecycle.RentalCheckedOut}).
		Where(squirrel.Lt{model.FieldEndAt: due}).
		OrderBy(model.FieldEndAt).
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	return gRepo.Psql.
		Update(model.TableName).
		Set(model.FieldStatus, lifecycle.RentalOverdue).
		Set(model.FieldLockVersion, squirrel.Expr(model.FieldLockVersion+" + 1")).
		Set(constant.FieldModifiedAt, now).
		Set(constant.FieldModifiedBy, actor).
		Where(squirrel.Expr(model.FieldID+" IN (?)", late)).
		Suffix("RETURNING *")
}
