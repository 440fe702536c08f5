// Package reservation serializes commits that touch the same resource time.
//
// A commit runs in one write transaction that first takes transaction-scoped advisory locks: the
// resource key in shared mode plus an exclusive lock for every (resource, bucket) the claim
// touches. A claim too wide to bucket takes the resource key exclusively, so it waits on every
// other claim of the resource. Claims that share no bucket never wait on each other, and the
// database releases every lock when the transaction ends.
package reservation

//go:generate go run go.uber.org/mock/mockgen -source=./manager.go -destination=./mocks/manager_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
)

const (
	ScopeStaff   = "staff"
	ScopeProduct = "product"

	// maxBucketsPerClaim bounds the lock list; wider claims lock the whole resource instead.
	maxBucketsPerClaim = 512

	queryLockTimeout        = "SET LOCAL lock_timeout = '%dms'"
	queryAdvisoryLock       = "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))"
	queryAdvisoryLockShared = "SELECT pg_advisory_xact_lock_shared(hashtextextended($1, 0))"
)

// Lock is one advisory lock of a claim. Two locks on the same key conflict unless both are shared.
type Lock struct {
	Key    string
	Shared bool
}

func (l Lock) query() string {
	if l.Shared {
		return queryAdvisoryLockShared
	}

	return queryAdvisoryLock
}

// Claim names the resource time a commit is about to change.
type Claim struct {
	Scope  string
	ID     uuid.UUID
	Window interval.Interval
	Bucket time.Duration
	// Keys are extra lock keys taken with the buckets, e.g. a per-day counter.
	Keys []string
}

// TxFunc does the work of a commit. Returning an error rolls everything back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

type Manager interface {
	// Commit runs fn under the claim's locks and maps database contention to failures.
	Commit(ctx context.Context, claim Claim, fn TxFunc) error
	// InTx runs fn in a bounded transaction without advisory locks.
	InTx(ctx context.Context, fn TxFunc) error
}

type managerImpl struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Manager {
	return &managerImpl{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

func (m *managerImpl) Commit(ctx context.Context, claim Claim, fn TxFunc) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelReservationScopeName, constant.OtelReservationScopeName+".Commit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	locks := Locks(claim)
	scope.SetAttribute("reservation.scope", claim.Scope)
	scope.SetAttribute("reservation.keys", len(locks))

	return m.run(ctx, locks, fn)
}

func (m *managerImpl) InTx(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelReservationScopeName, constant.OtelReservationScopeName+".InTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return m.run(ctx, nil, fn)
}

func (m *managerImpl) run(ctx context.Context, locks []Lock, fn TxFunc) (err error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(m.cfg.Reservation.CommitTimeoutMs)*time.Millisecond)
	defer cancel()

	tx, err := m.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return mapError(ctx, fmt.Errorf("failed to begin reservation transaction: %w", err))
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) && !errors.Is(rbErr, context.DeadlineExceeded) {
			log.Warn().Err(rbErr).Msg("failed to roll back reservation transaction")
		}
	}()

	if _, err = tx.ExecContext(ctx, fmt.Sprintf(queryLockTimeout, m.cfg.Reservation.LockTimeoutMs)); err != nil {
		return mapError(ctx, fmt.Errorf("failed to set lock timeout: %w", err))
	}

	for _, lock := range locks {
		if _, err = tx.ExecContext(ctx, lock.query(), lock.Key); err != nil {
			log.Warn().Err(err).Str("key", lock.Key).Bool("shared", lock.Shared).Msg("failed to acquire reservation lock")

			return mapError(ctx, fmt.Errorf("failed to lock %s: %w", lock.Key, err))
		}
	}

	if err = fn(ctx, tx); err != nil {
		return mapError(ctx, err)
	}

	if err = tx.Commit(); err != nil {
		return mapError(ctx, fmt.Errorf("failed to commit reservation transaction: %w", err))
	}

	return nil
}

// Locks lists the advisory locks of a claim, sorted by key so every caller acquires them in the
// same order. The resource key always comes first: shared for a bucketed claim, exclusive for a
// claim that locks the whole resource.
func Locks(claim Claim) []Lock {
	prefix := claim.Scope + ":" + claim.ID.String()
	buckets := bucketsOf(claim.Window, claim.Bucket)

	locks := []Lock{{Key: prefix, Shared: buckets != nil}}

	for _, b := range buckets {
		locks = append(locks, Lock{Key: prefix + ":" + strconv.FormatInt(b, 10)})
	}

	for _, key := range claim.Keys {
		if key != prefix {
			locks = append(locks, Lock{Key: key})
		}
	}

	slices.SortFunc(locks, func(a, b Lock) int { return strings.Compare(a.Key, b.Key) })

	return slices.CompactFunc(locks, func(a, b Lock) bool { return a.Key == b.Key })
}

// bucketsOf returns the unix start of every bucket the window touches, or nil when the claim
// must lock the whole resource.
func bucketsOf(window interval.Interval, bucket time.Duration) []int64 {
	size := int64(bucket / time.Second)
	if size <= 0 || !window.Valid() {
		return nil
	}

	first := floorDiv(window.Start.Unix(), size)
	last := floorDiv(window.End.Add(-time.Nanosecond).Unix(), size)

	if last-first+1 > maxBucketsPerClaim {
		return nil
	}

	buckets := make([]int64, 0, last-first+1)
	for b := first; b <= last; b++ {
		buckets = append(buckets, b*size)
	}

	return buckets
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// DayKey serializes per-day counters such as the daily booking cap.
func DayKey(scope string, id uuid.UUID, date string) string {
	return scope + ":" + id.String() + ":day:" + date
}

func mapError(ctx context.Context, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgerrcode.LockNotAvailable, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected,
			pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", failure.ErrReservationContended, pqErr.Message)
		case pgerrcode.ExclusionViolation:
			return fmt.Errorf("%w: overlaps an existing reservation", failure.ErrSlotNoLongerAvailable)
		case pgerrcode.QueryCanceled:
			if errors.Is(ctx.Err(), context.Canceled) {
				return fmt.Errorf("reservation aborted: %w", context.Canceled)
			}

			return fmt.Errorf("%w: %s", failure.ErrReservationContended, pqErr.Message)
		}
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: commit deadline exceeded", failure.ErrReservationContended)
	}

	return err
}
