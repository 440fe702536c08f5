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
	"slotkeeper/internal/domains/availability/model"
	bookingModel "slotkeeper/internal/domains/booking/model"
	calendarModel "slotkeeper/internal/domains/calendar/model"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared/constant"
	gRepo "slotkeeper/shared/repository"
)

// Busy reads the committed time of a resource. The Tx variants read inside a reservation
// transaction so the check sees what the commit will see.
type Busy interface {
	// Bookings returns pending and confirmed bookings overlapping window, skipping exclude.
	Bookings(ctx context.Context, resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) ([]interval.Interval, error)
	BookingsTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) ([]interval.Interval, error)
	// External returns imported calendar events of every connection of the resource overlapping window.
	External(ctx context.Context, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, error)
	ExternalTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, error)
	// CountPerDay groups blocking bookings starting inside window by their date in loc.
	CountPerDay(ctx context.Context, resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) (map[policy.Date]int, error)
	CountPerDayTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) (map[policy.Date]int, error)
}

type busyRepository struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewBusy(db *postgres.Connection, otel otel.Otel) Busy {
	return &busyRepository{
		db:   db,
		otel: otel,
	}
}

func (r *busyRepository) Bookings(ctx context.Context, resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) ([]interval.Interval, error) {
	return r.bookings(ctx, r.db.Read, resourceID, window, exclude)
}

func (r *busyRepository) BookingsTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) ([]interval.Interval, error) {
	return r.bookings(ctx, sqltx, resourceID, window, exclude)
}

func (r *busyRepository) bookings(ctx context.Context, q sqlx.QueryerContext, resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) ([]interval.Interval, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".busy.Bookings")
	defer scope.End()

	var spans []model.Span
	if err := gRepo.Select(ctx, scope, q, &spans, bookingsQuery(resourceID, window, exclude)); err != nil {
		return nil, fmt.Errorf("failed to get busy bookings: %w", err)
	}

	return model.Intervals(spans), nil
}

func (r *busyRepository) External(ctx context.Context, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, error) {
	return r.external(ctx, r.db.Read, resourceID, window)
}

func (r *busyRepository) ExternalTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, error) {
	return r.external(ctx, sqltx, resourceID, window)
}

func (r *busyRepository) external(ctx context.Context, q sqlx.QueryerContext, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".busy.External")
	defer scope.End()

	var spans []model.Span
	if err := gRepo.Select(ctx, scope, q, &spans, externalQuery(resourceID, window)); err != nil {
		return nil, fmt.Errorf("failed to get external busy intervals: %w", err)
	}

	return model.Intervals(spans), nil
}

func (r *busyRepository) CountPerDay(ctx context.Context, resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) (map[policy.Date]int, error) {
	return r.countPerDay(ctx, r.db.Read, resourceID, window, loc, exclude)
}

func (r *busyRepository) CountPerDayTx(ctx context.Context, sqltx *sqlx.Tx, resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) (map[policy.Date]int, error) {
	return r.countPerDay(ctx, sqltx, resourceID, window, loc, exclude)
}

func (r *busyRepository) countPerDay(ctx context.Context, q sqlx.QueryerContext, resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) (map[policy.Date]int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".busy.CountPerDay")
	defer scope.End()

	var rows []model.DayCount
	if err := gRepo.Select(ctx, scope, q, &rows, countPerDayQuery(resourceID, window, loc, exclude)); err != nil {
		return nil, fmt.Errorf("failed to count bookings per day: %w", err)
	}

	return model.Counts(rows), nil
}

func blockingStatuses() []string {
	statuses := lifecycle.BlockingBookingStatuses()

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	return values
}

func bookingsQuery(resourceID uuid.UUID, window interval.Interval, exclude uuid.UUID) squirrel.SelectBuilder {
	query := gRepo.Psql.
		Select(bookingModel.FieldStartAt, bookingModel.FieldEndAt).
		From(bookingModel.TableName).
		Where(squirrel.Eq{bookingModel.FieldResourceID: resourceID, bookingModel.FieldStatus: blockingStatuses()}).
		Where(squirrel.Lt{bookingModel.FieldStartAt: window.End}).
		Where(squirrel.Gt{bookingModel.FieldEndAt: window.Start}).
		OrderBy(bookingModel.FieldStartAt)

	if exclude != uuid.Nil {
		query = query.Where(squirrel.NotEq{bookingModel.FieldID: exclude})
	}

	return query
}

func externalQuery(resourceID uuid.UUID, window interval.Interval) squirrel.SelectBuilder {
	return gRepo.Psql.
		Select("e."+calendarModel.FieldStartAt, "e."+calendarModel.FieldEndAt).
		From(calendarModel.BusyTableName + " e").
		Join(calendarModel.ConnectionTableName + " c ON c.id = e.connection_id").
		Where(squirrel.Eq{"c." + calendarModel.FieldResourceID: resourceID}).
		Where(squirrel.Lt{"e." + calendarModel.FieldStartAt: window.End}).
		Where(squirrel.Gt{"e." + calendarModel.FieldEndAt: window.Start}).
		OrderBy("e." + calendarModel.FieldStartAt)
}

func countPerDayQuery(resourceID uuid.UUID, window interval.Interval, loc *time.Location, exclude uuid.UUID) squirrel.SelectBuilder {
	query := gRepo.Psql.
		Select().
		Column(squirrel.Expr("(start_at AT TIME ZONE ?)::date AS day", loc.String())).
		Column("COUNT(*) AS total").
		From(bookingModel.TableName).
		Where(squirrel.Eq{bookingModel.FieldResourceID: resourceID, bookingModel.FieldStatus: blockingStatuses()}).
		Where(squirrel.GtOrEq{bookingModel.FieldStartAt: window.Start}).
		Where(squirrel.Lt{bookingModel.FieldStartAt: window.End}).
		GroupBy("day")

	if exclude != uuid.Nil {
		query = query.Where(squirrel.NotEq{bookingModel.FieldID: exclude})
	}

	return query
}
