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
	outboxModel "slotkeeper/internal/domains/outbox/model"
	outboxService "slotkeeper/internal/domains/outbox/service"
	"slotkeeper/internal/domains/rental/model"
	"slotkeeper/internal/domains/rental/model/dto"
	"slotkeeper/internal/domains/rental/repository"
	"slotkeeper/internal/reservation"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/ledger"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
	gModel "slotkeeper/shared/model"
	"slotkeeper/shared/timezone"
)

const hoursPerDay = 24

type Rental interface {
	// GetRentalCapacity returns the units still free over the whole window, and optionally how
	// that capacity changes inside it.
	GetRentalCapacity(ctx context.Context, businessID, productID uuid.UUID, window interval.Interval, timeline bool) (dto.CapacityResponse, error)
	ReserveRental(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.ReserveRentalRequest, idempotencyKey string) (dto.RentalResponse, error)
	GetRental(ctx context.Context, actor lifecycle.Actor, businessID, rentalID uuid.UUID) (dto.RentalResponse, error)
	TransitionRental(ctx context.Context, actor lifecycle.Actor, businessID, rentalID uuid.UUID, req dto.TransitionRequest) (dto.RentalResponse, error)
	// MarkOverdue flags one batch of checked out rentals that were not returned by their end.
	MarkOverdue(ctx context.Context) (int, error)
}

type Dependencies struct {
	Idempotency reservation.Idempotency
	Manager     reservation.Manager
	Outbox      outboxService.Outbox
}

type serviceImpl struct {
	repo     repository.Rental
	products repository.Product
	deps     Dependencies
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Rental, products repository.Product, deps Dependencies, cfg *config.Config, otel otel.Otel) Rental {
	return &serviceImpl{
		repo:     repo,
		products: products,
		deps:     deps,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) GetRentalCapacity(ctx context.Context, businessID, productID uuid.UUID, window interval.Interval, timeline bool) (res dto.CapacityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.GetRentalCapacity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !window.Valid() {
		return res, failure.BadRequestFromString("window must end after it starts") // nolint:wrapcheck
	}

	if maxDays := s.cfg.Scheduling.MaxRangeDays; window.Duration() > time.Duration(maxDays)*hoursPerDay*time.Hour {
		return res, fmt.Errorf("%w: at most %d days per request", failure.ErrRangeTooLarge, maxDays)
	}

	product, err := s.product(ctx, businessID, productID)
	if err != nil {
		return res, err
	}

	rentals, err := s.repo.Holds(ctx, productID, window)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental holds")

		return res, fmt.Errorf("failed to get rental holds: %w", err)
	}

	holds := model.Holds(rentals, timezone.Now())
	total := product.RentalQuantityAvailable

	res = dto.CapacityResponse{
		ProductID: productID,
		Window:    window,
		Total:     total,
		Remaining: ledger.RemainingCapacity(total, holds, window),
	}

	if timeline {
		res.Timeline = ledger.Timeline(total, holds, window)
	}

	return res, nil
}

func (s *serviceImpl) ReserveRental(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.ReserveRentalRequest, idempotencyKey string) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.ReserveRental")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !actor.IsStaff() {
		req.CustomerID = actor.ID
	}

	if req.CustomerID == uuid.Nil {
		return res, failure.BadRequestFromString("customer_id is required") // nolint:wrapcheck
	}

	if req.Quantity <= 0 {
		return res, failure.BadRequestFromString("quantity must be positive") // nolint:wrapcheck
	}

	candidate, err := interval.New(req.Start, req.End)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if maxDays := s.cfg.Scheduling.MaxRangeDays; candidate.Duration() > time.Duration(maxDays)*hoursPerDay*time.Hour {
		return res, fmt.Errorf("%w: rentals last at most %d days", failure.ErrRangeTooLarge, maxDays)
	}

	now := timezone.Now()
	if candidate.Start.Before(now) {
		return res, fmt.Errorf("%w: rentals cannot start in the past", failure.ErrPolicyViolation)
	}

	product, err := s.product(ctx, businessID, req.ProductID)
	if err != nil {
		return res, err
	}

	var requestHash string
	if idempotencyKey != "" {
		if requestHash, err = reservation.RequestHash(req); err != nil {
			return res, err // nolint:wrapcheck
		}
	}

	rental := model.Rental{
		ID:         uuid.New(),
		BusinessID: businessID,
		ProductID:  product.ID,
		CustomerID: req.CustomerID,
		StartAt:    candidate.Start,
		EndAt:      candidate.End,
		Quantity:   req.Quantity,
		Status:     lifecycle.RentalPendingDeposit,
		Metadata:   gModel.NewMetadata(now, actor.String()),
	}

	claim := reservation.Claim{
		Scope:  reservation.ScopeProduct,
		ID:     product.ID,
		Window: candidate,
		Bucket: time.Duration(s.cfg.Reservation.RentalLockBucketMinutes) * time.Minute,
	}

	var replayed uuid.UUID

	err = s.deps.Manager.Commit(ctx, claim, func(ctx context.Context, tx *sqlx.Tx) error {
		if idempotencyKey != "" {
			record, found, err := s.deps.Idempotency.FindTx(ctx, tx, businessID, idempotencyKey)
			if err != nil {
				return err // nolint:wrapcheck
			}

			if found {
				replayed, err = record.Replay(reservation.KindRental, requestHash)

				return err // nolint:wrapcheck
			}
		}

		rentals, err := s.repo.HoldsTx(ctx, tx, product.ID, candidate)
		if err != nil {
			return fmt.Errorf("failed to get rental holds: %w", err)
		}

		holds := model.Holds(rentals, now)
		if !ledger.CanReserve(product.RentalQuantityAvailable, holds, candidate, req.Quantity) {
			remaining := ledger.RemainingCapacity(product.RentalQuantityAvailable, holds, candidate)

			return failure.Wrap(failure.ErrCapacityExceeded, "%d requested, %d left", req.Quantity, remaining) // nolint:wrapcheck
		}

		if err = s.repo.InsertTx(ctx, tx, rental); err != nil {
			return fmt.Errorf("failed to insert rental: %w", err)
		}

		if idempotencyKey != "" {
			err = s.deps.Idempotency.SaveTx(ctx, tx, reservation.IdempotencyRecord{
				BusinessID:    businessID,
				Key:           idempotencyKey,
				Kind:          reservation.KindRental,
				RequestHash:   requestHash,
				ReservationID: rental.ID,
				CreatedAt:     now,
			})
			if err != nil {
				return fmt.Errorf("failed to save idempotency key: %w", err)
			}
		}

		return s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationCreated, event(rental, actor, now)) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("product_id", req.ProductID.String()).Int("quantity", req.Quantity).Msg("failed to reserve rental")

		return res, err // nolint:wrapcheck
	}

	if replayed != uuid.Nil {
		log.Info().Str("rental_id", replayed.String()).Msg("replaying idempotent rental")

		return s.GetRental(ctx, actor, businessID, replayed)
	}

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) GetRental(ctx context.Context, actor lifecycle.Actor, businessID, rentalID uuid.UUID) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.GetRental")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rental, err := s.repo.Get(ctx, shared.FilterByBusiness(businessID, rentalID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return res, fmt.Errorf("failed to get rental: %w", err)
	}

	if err = visible(rental, actor); err != nil {
		return res, err
	}

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) TransitionRental(ctx context.Context, actor lifecycle.Actor, businessID, rentalID uuid.UUID, req dto.TransitionRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.TransitionRental")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	to := req.Status
	if !to.Valid() {
		return res, shared.InvalidParam("status", string(to)) // nolint:wrapcheck
	}

	// Customers may only walk away from a rental; handing units out and back is staff work.
	if !actor.IsStaff() && to != lifecycle.RentalCancelled {
		return res, failure.Forbidden("only staff can move a rental to " + string(to)) // nolint:wrapcheck
	}

	scope.SetAttribute("rental.status", string(to))

	var rental model.Rental

	err = s.deps.Manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		rental, err = s.repo.GetTx(ctx, tx, shared.FilterByBusiness(businessID, rentalID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get rental: %w", err)
		}

		if err = visible(rental, actor); err != nil {
			return err
		}

		from := rental.Status
		if err = lifecycle.TransitionRental(from, to); err != nil {
			return err // nolint:wrapcheck
		}

		now := timezone.Now()
		version := rental.LockVersion

		rental.Status = to
		rental.LockVersion = version + 1
		rental.ModifiedAt = now
		rental.ModifiedBy = actor.String()

		mod := map[string]any{
			model.FieldStatus:        to,
			model.FieldLockVersion:   rental.LockVersion,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.String(),
		}

		eventType := outboxModel.EventReservationStatusChanged
		if to == lifecycle.RentalCancelled {
			rental.CancelReason = req.Reason
			rental.CancelledBy = actor.String()
			mod[model.FieldCancelReason] = rental.CancelReason
			mod[model.FieldCancelledBy] = rental.CancelledBy
			eventType = outboxModel.EventReservationCancelled
		}

		affected, err := s.repo.UpdateTxCount(ctx, tx, mod, versionFilter(rental.ID, version))
		if err != nil {
			return fmt.Errorf("failed to update rental status: %w", err)
		}

		if affected == 0 {
			return failure.Wrap(failure.ErrReservationContended, "rental %s changed concurrently", rental.ID) // nolint:wrapcheck
		}

		payload := event(rental, actor, now)
		payload.PreviousStatus = string(from)
		payload.Reason = rental.CancelReason

		return s.deps.Outbox.Record(ctx, tx, eventType, payload) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("rental_id", rentalID.String()).Str("to", string(to)).Msg("failed to transition rental")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) MarkOverdue(ctx context.Context) (marked int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".rental.MarkOverdue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	var rentals []model.Rental

	err = s.deps.Manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		rentals, err = s.repo.MarkOverdueTx(ctx, tx, now, s.cfg.Jobs.BatchSize, lifecycle.System.String())
		if err != nil {
			return err // nolint:wrapcheck
		}

		for _, rental := range rentals {
			payload := event(rental, lifecycle.System, now)
			payload.PreviousStatus = string(lifecycle.RentalCheckedOut)

			if err = s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationStatusChanged, payload); err != nil {
				return err // nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to mark overdue rentals")

		return 0, fmt.Errorf("failed to mark overdue rentals: %w", err)
	}

	return len(rentals), nil
}

func (s *serviceImpl) product(ctx context.Context, businessID, productID uuid.UUID) (model.Product, error) {
	product, err := s.products.Get(ctx, shared.FilterByBusiness(businessID, productID, model.ProductTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return product, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == uuid.Nil || !product.Active {
		return product, failure.Wrap(failure.ErrResourceNotFound, "product %s", productID) // nolint:wrapcheck
	}

	return product, nil
}

func versionFilter(rentalID uuid.UUID, version int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: rentalID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "expected_lock_version", Field: model.FieldLockVersion, Value: version, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// visible hides other customers' rentals behind a not found.
func visible(rental model.Rental, actor lifecycle.Actor) error {
	if rental.ID == uuid.Nil || (!actor.IsStaff() && rental.CustomerID != actor.ID) {
		return failure.NotFound("rental not found") // nolint:wrapcheck
	}

	return nil
}

func event(rental model.Rental, actor lifecycle.Actor, now time.Time) outboxModel.Reservation {
	return outboxModel.Reservation{
		ReservationID: rental.ID,
		Kind:          outboxModel.AggregateRental,
		BusinessID:    rental.BusinessID,
		ResourceID:    rental.ProductID,
		Interval:      rental.Interval(),
		Quantity:      rental.Quantity,
		Status:        string(rental.Status),
		ActorID:       actor.String(),
		OccurredAt:    now,
	}
}
