package repository

//go:generate go run go.uber.org/mock/mockgen -source=./policy.go -destination=../mocks/policy_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/internal/domains/resource/model"
	"slotkeeper/shared/constant"
	gRepo "slotkeeper/shared/repository"
)

const (
	conflictBusinessPolicy = "ON CONFLICT (business_id) WHERE resource_id IS NULL"
	conflictResourcePolicy = "ON CONFLICT (resource_id) WHERE resource_id IS NOT NULL"
)

var policyUpdatable = []string{
	model.FieldBufferMinutes,
	model.FieldMinAdvanceMinutes,
	model.FieldMaxAdvanceDays,
	model.FieldMaxDailyBookings,
	model.FieldGranularityMinutes,
	model.FieldUseFixedIntervals,
	model.FieldCancellationWindowMinutes,
	model.FieldAutoConfirm,
	constant.FieldModifiedAt,
	constant.FieldModifiedBy,
}

type Policy interface {
	// ForResource returns the business default and the resource override, whichever exist.
	ForResource(ctx context.Context, businessID, resourceID uuid.UUID) ([]model.BookingPolicy, error)
	Upsert(ctx context.Context, policy model.BookingPolicy) error
}

type policyRepository struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewPolicy(db *postgres.Connection, otel otel.Otel) Policy {
	return &policyRepository{
		db:   db,
		otel: otel,
	}
}

func (r *policyRepository) ForResource(ctx context.Context, businessID, resourceID uuid.UUID) (rows []model.BookingPolicy, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".policy.ForResource")
	defer scope.End()

	err = gRepo.Select(ctx, scope, r.db.Read, &rows, forResourceQuery(businessID, resourceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get booking policies: %w", err)
	}

	return rows, nil
}

func forResourceQuery(businessID, resourceID uuid.UUID) squirrel.SelectBuilder {
	return gRepo.Psql.
		Select("*").
		From(model.PolicyTableName).
		Where(squirrel.Eq{model.FieldBusinessID: businessID}).
		Where(squirrel.Or{
			squirrel.Eq{model.FieldResourceID: nil},
			squirrel.Eq{model.FieldResourceID: resourceID},
		})
}

func (r *policyRepository) Upsert(ctx context.Context, policy model.BookingPolicy) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".policy.Upsert")
	defer scope.End()

	if _, err = gRepo.Exec(ctx, scope, r.db.Write, upsertPolicyQuery(policy)); err != nil {
		return fmt.Errorf("failed to upsert booking policy: %w", err)
	}

	return nil
}

func upsertPolicyQuery(policy model.BookingPolicy) squirrel.InsertBuilder {
	conflict := conflictBusinessPolicy
	if policy.ResourceID.Valid {
		conflict = conflictResourcePolicy
	}

	return gRepo.Psql.
		Insert(model.PolicyTableName).
		SetMap(map[string]any{
			model.FieldID:                        policy.ID,
			model.FieldBusinessID:                policy.BusinessID,
			model.FieldResourceID:                policy.ResourceID,
			model.FieldBufferMinutes:             policy.BufferMinutes,
			model.FieldMinAdvanceMinutes:         policy.MinAdvanceMinutes,
			model.FieldMaxAdvanceDays:            policy.MaxAdvanceDays,
			model.FieldMaxDailyBookings:          policy.MaxDailyBookings,
			model.FieldGranularityMinutes:        policy.GranularityMinutes,
			model.FieldUseFixedIntervals:         policy.UseFixedIntervals,
			model.FieldCancellationWindowMinutes: policy.CancellationWindowMinutes,
			model.FieldAutoConfirm:               policy.AutoConfirm,
			constant.FieldCreatedAt:              policy.CreatedAt,
			constant.FieldCreatedBy:              policy.CreatedBy,
			constant.FieldModifiedAt:             policy.ModifiedAt,
			constant.FieldModifiedBy:             policy.ModifiedBy,
		}).
		Suffix(conflict + " DO UPDATE SET " + excludedAssignments(policyUpdatable))
}

func excludedAssignments(columns []string) string {
	assignments := ""

	for i, col := range columns {
		if i > 0 {
			assignments += ", "
		}

		assignments += col + " = EXCLUDED." + col
	}

	return assignments
}
