package reservation

//go:generate go run go.uber.org/mock/mockgen -source=./idempotency.go -destination=./mocks/idempotency_mock.go -package=mocks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
	gRepo "slotkeeper/shared/repository"
)

const (
	KindBooking = "booking"
	KindRental  = "rental"

	idempotencyTable  = "reservation_idempotency_keys"
	fieldBusinessID   = "business_id"
	fieldIdempotency  = "idempotency_key"
	fieldIdemCreateAt = "created_at"
)

// IdempotencyRecord maps a client supplied key to the reservation its first request created.
type IdempotencyRecord struct {
	BusinessID    uuid.UUID `db:"business_id"`
	Key           string    `db:"idempotency_key"`
	Kind          string    `db:"kind"`
	RequestHash   string    `db:"request_hash"`
	ReservationID uuid.UUID `db:"reservation_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// Replay resolves a stored record against a retried request. It returns the stored reservation
// id, or ErrIdempotencyKeyMismatch when the key was first used for a different request.
func (r IdempotencyRecord) Replay(kind, requestHash string) (uuid.UUID, error) {
	if r.Kind != kind || r.RequestHash != requestHash {
		return uuid.Nil, fmt.Errorf("%w: key %q", failure.ErrIdempotencyKeyMismatch, r.Key)
	}

	return r.ReservationID, nil
}

type Idempotency interface {
	// FindTx returns false when the key has not been used by the business.
	FindTx(ctx context.Context, sqltx *sqlx.Tx, businessID uuid.UUID, key string) (IdempotencyRecord, bool, error)
	// SaveTx fails with a unique violation when a concurrent request stored the same key first.
	SaveTx(ctx context.Context, sqltx *sqlx.Tx, record IdempotencyRecord) error
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

type idempotencyImpl struct {
	gRepo.Repository[IdempotencyRecord]
	db   *postgres.Connection
	otel otel.Otel
}

func NewIdempotency(db *postgres.Connection, otel otel.Otel) Idempotency {
	return &idempotencyImpl{
		Repository: gRepo.NewRepository[IdempotencyRecord]("idempotency_key", idempotencyTable, fieldIdempotency, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *idempotencyImpl) FindTx(ctx context.Context, sqltx *sqlx.Tx, businessID uuid.UUID, key string) (IdempotencyRecord, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".idempotency.FindTx")
	defer scope.End()

	record, err := r.GetTx(ctx, sqltx, idempotencyFilter(businessID, key))
	if err != nil {
		return IdempotencyRecord{}, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	return record, record.ReservationID != uuid.Nil, nil
}

func (r *idempotencyImpl) SaveTx(ctx context.Context, sqltx *sqlx.Tx, record IdempotencyRecord) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".idempotency.SaveTx")
	defer scope.End()

	return r.InsertTx(ctx, sqltx, record) // nolint:wrapcheck
}

func (r *idempotencyImpl) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".idempotency.Purge")
	defer scope.End()

	result, err := gRepo.Exec(ctx, scope, r.db.Write, purgeQuery(olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to purge idempotency keys: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged idempotency keys: %w", err)
	}

	return purged, nil
}

func idempotencyFilter(businessID uuid.UUID, key string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: fieldBusinessID, Value: businessID, Operator: dto.FilterOperatorEq, Table: idempotencyTable},
			dto.Filter{Field: fieldIdempotency, Value: key, Operator: dto.FilterOperatorEq, Table: idempotencyTable},
		},
	}
}

func purgeQuery(olderThan time.Time) squirrel.DeleteBuilder {
	return gRepo.Psql.Delete(idempotencyTable).Where(squirrel.Lt{fieldIdemCreateAt: olderThan})
}

// RequestHash fingerprints a reserve request so a reused key with a different body is detected.
func RequestHash(request any) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode request for idempotency: %w", err)
	}

	sum := sha256.Sum256(body)

	return hex.EncodeToString(sum[:]), nil
}
