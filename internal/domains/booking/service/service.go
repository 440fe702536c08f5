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
	availabilityService "slotkeeper/internal/domains/availability/service"
	"slotkeeper/internal/domains/booking/model"
	"slotkeeper/internal/domains/booking/model/dto"
	"slotkeeper/internal/domains/booking/repository"
	outboxModel "slotkeeper/internal/domains/outbox/model"
	outboxService "slotkeeper/internal/domains/outbox/service"
	resourceService "slotkeeper/internal/domains/resource/service"
	"slotkeeper/internal/reservation"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared"
	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	gModel "slotkeeper/shared/model"
	"slotkeeper/shared/timezone"
)

type Booking interface {
	// Reserve books the resource for the service's duration from req.Start. A non-empty
	// idempotencyKey makes retries of the same request return the first booking.
	Reserve(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.ReserveRequest, idempotencyKey string) (dto.BookingResponse, error)
	Get(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error)
	List(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, query dto.ListQuery) (dto.BookingsResponse, error)
	Confirm(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error)
	Complete(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error)
	Cancel(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID, req dto.CancelRequest) (dto.BookingResponse, error)
	// Reschedule moves a pending or confirmed booking and keeps its status.
	Reschedule(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID, req dto.RescheduleRequest) (dto.BookingResponse, error)
	// CompleteDue completes one batch of confirmed bookings past their end plus the grace period.
	CompleteDue(ctx context.Context) (int, error)
}

type Dependencies struct {
	Idempotency  reservation.Idempotency
	Manager      reservation.Manager
	Availability availabilityService.Availability
	Resource     resourceService.Resource
	Outbox       outboxService.Outbox
}

type serviceImpl struct {
	repo  repository.Booking
	deps  Dependencies
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, deps Dependencies, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		deps:  deps,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Reserve(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.ReserveRequest, idempotencyKey string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !actor.IsStaff() {
		req.CustomerID = actor.ID
	}

	if req.CustomerID == uuid.Nil {
		return res, failure.BadRequestFromString("customer_id is required") // nolint:wrapcheck
	}

	duration, err := s.deps.Resource.GetServiceDuration(ctx, businessID, req.ServiceID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	candidate, err := interval.New(req.Start, req.Start.Add(duration))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	schedule, err := s.deps.Resource.LoadSchedule(ctx, businessID, req.ResourceID, candidate)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	var requestHash string
	if idempotencyKey != "" {
		if requestHash, err = reservation.RequestHash(req); err != nil {
			return res, err // nolint:wrapcheck
		}
	}

	now := timezone.Now()
	status := lifecycle.BookingPending

	if schedule.Policy.AutoConfirm {
		status = lifecycle.BookingConfirmed
	}

	booking := model.Booking{
		ID:           uuid.New(),
		BusinessID:   businessID,
		ResourceID:   req.ResourceID,
		ServiceID:    req.ServiceID,
		CustomerID:   req.CustomerID,
		StartAt:      candidate.Start,
		EndAt:        candidate.End,
		BlockedUntil: candidate.End.Add(schedule.Policy.Buffer),
		Status:       status,
		Metadata:     gModel.NewMetadata(now, actor.String()),
	}

	var replayed uuid.UUID

	err = s.deps.Manager.Commit(ctx, s.claim(req.ResourceID, candidate, schedule), func(ctx context.Context, tx *sqlx.Tx) error {
		if idempotencyKey != "" {
			record, found, err := s.deps.Idempotency.FindTx(ctx, tx, businessID, idempotencyKey)
			if err != nil {
				return err // nolint:wrapcheck
			}

			if found {
				replayed, err = record.Replay(reservation.KindBooking, requestHash)

				return err // nolint:wrapcheck
			}
		}

		err := s.deps.Availability.Verify(ctx, tx, availabilityService.Verification{
			ResourceID: req.ResourceID,
			Schedule:   schedule,
			Candidate:  candidate,
			Now:        now,
		})
		if err != nil {
			return err // nolint:wrapcheck
		}

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if idempotencyKey != "" {
			err = s.deps.Idempotency.SaveTx(ctx, tx, reservation.IdempotencyRecord{
				BusinessID:    businessID,
				Key:           idempotencyKey,
				Kind:          reservation.KindBooking,
				RequestHash:   requestHash,
				ReservationID: booking.ID,
				CreatedAt:     now,
			})
			if err != nil {
				return fmt.Errorf("failed to save idempotency key: %w", err)
			}
		}

		return s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationCreated, event(booking, actor, now)) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("resource_id", req.ResourceID.String()).Msg("failed to reserve booking")

		return res, err // nolint:wrapcheck
	}

	if replayed != uuid.Nil {
		log.Info().Str("booking_id", replayed.String()).Msg("replaying idempotent reservation")

		return s.Get(ctx, actor, businessID, replayed)
	}

	s.invalidate(ctx, booking.ResourceID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByBusiness(businessID, bookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if err = visible(booking, actor); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, query dto.ListQuery) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !actor.IsStaff() {
		query.CustomerID = actor.ID
	}

	filter := query.Filter(businessID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, query.QueryParams, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, query.Limit)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error) {
	return s.transition(ctx, actor, businessID, bookingID, lifecycle.BookingConfirmed)
}

func (s *serviceImpl) Complete(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error) {
	return s.transition(ctx, actor, businessID, bookingID, lifecycle.BookingCompleted)
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error) {
	return s.transition(ctx, actor, businessID, bookingID, lifecycle.BookingNoShow)
}

func (s *serviceImpl) transition(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID, to lifecycle.BookingStatus) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.status", string(to))

	var booking model.Booking

	err = s.deps.Manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.lockBooking(ctx, tx, actor, businessID, bookingID)
		if err != nil {
			return err
		}

		from := booking.Status
		if err = lifecycle.TransitionBooking(from, to); err != nil {
			return err // nolint:wrapcheck
		}

		now := timezone.Now()
		booking.Status = to
		booking.ModifiedAt = now
		booking.ModifiedBy = actor.String()

		mod := map[string]any{
			model.FieldStatus:        to,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.String(),
		}

		if err = s.repo.UpdateTx(ctx, tx, mod, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		payload := event(booking, actor, now)
		payload.PreviousStatus = string(from)

		return s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationStatusChanged, payload) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID.String()).Str("to", string(to)).Msg("failed to transition booking")

		return res, err // nolint:wrapcheck
	}

	// completed and no_show stop blocking the resource.
	if !to.Blocking() {
		s.invalidate(ctx, booking.ResourceID)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID, req dto.CancelRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var booking model.Booking

	err = s.deps.Manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.lockBooking(ctx, tx, actor, businessID, bookingID)
		if err != nil {
			return err
		}

		from := booking.Status
		if err = lifecycle.TransitionBooking(from, lifecycle.BookingCancelled); err != nil {
			return err // nolint:wrapcheck
		}

		now := timezone.Now()

		if err = s.checkCancellationWindow(ctx, actor, booking, now); err != nil {
			return err
		}

		booking.Status = lifecycle.BookingCancelled
		booking.CancelReason = req.Reason
		booking.CancelledBy = actor.String()
		booking.ModifiedAt = now
		booking.ModifiedBy = actor.String()

		mod := map[string]any{
			model.FieldStatus:        booking.Status,
			model.FieldCancelReason:  booking.CancelReason,
			model.FieldCancelledBy:   booking.CancelledBy,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.String(),
		}

		if err = s.repo.UpdateTx(ctx, tx, mod, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		payload := event(booking, actor, now)
		payload.PreviousStatus = string(from)
		payload.Reason = req.Reason

		return s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationCancelled, payload) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID.String()).Msg("failed to cancel booking")

		return res, err // nolint:wrapcheck
	}

	s.invalidate(ctx, booking.ResourceID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID, req dto.RescheduleRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, shared.FilterByBusiness(businessID, bookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if err = visible(current, actor); err != nil {
		return res, err
	}

	end := req.Start.Add(current.Interval().Duration())
	if req.End != nil {
		end = *req.End
	}

	candidate, err := interval.New(req.Start, end)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	schedule, err := s.deps.Resource.LoadSchedule(ctx, businessID, current.ResourceID, candidate)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	var (
		booking  model.Booking
		previous interval.Interval
	)

	err = s.deps.Manager.Commit(ctx, s.claim(current.ResourceID, candidate, schedule), func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.lockBooking(ctx, tx, actor, businessID, bookingID)
		if err != nil {
			return err
		}

		if !booking.Status.Blocking() {
			return fmt.Errorf("%w: %s bookings cannot be rescheduled", failure.ErrInvalidTransition, booking.Status)
		}

		now := timezone.Now()

		if err = s.checkCancellationWindow(ctx, actor, booking, now); err != nil {
			return err
		}

		err = s.deps.Availability.Verify(ctx, tx, availabilityService.Verification{
			ResourceID: booking.ResourceID,
			Schedule:   schedule,
			Candidate:  candidate,
			Exclude:    booking.ID,
			Now:        now,
		})
		if err != nil {
			return err // nolint:wrapcheck
		}

		previous = booking.Interval()
		booking.StartAt = candidate.Start
		booking.EndAt = candidate.End
		booking.BlockedUntil = candidate.End.Add(schedule.Policy.Buffer)
		booking.ModifiedAt = now
		booking.ModifiedBy = actor.String()

		mod := map[string]any{
			model.FieldStartAt:       booking.StartAt,
			model.FieldEndAt:         booking.EndAt,
			model.FieldBlockedUntil:  booking.BlockedUntil,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actor.String(),
		}

		if err = s.repo.UpdateTx(ctx, tx, mod, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to reschedule booking: %w", err)
		}

		payload := event(booking, actor, now)
		payload.PreviousInterval = &previous

		return s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationRescheduled, payload) // nolint:wrapcheck
	})
	if err != nil {
		log.Warn().Err(err).Str("booking_id", bookingID.String()).Msg("failed to reschedule booking")

		return res, err // nolint:wrapcheck
	}

	s.invalidate(ctx, booking.ResourceID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CompleteDue(ctx context.Context) (completed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".booking.CompleteDue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	cutoff := now.Add(-time.Duration(s.cfg.Jobs.CompletionGraceMinutes) * time.Minute)

	var bookings []model.Booking

	err = s.deps.Manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		bookings, err = s.repo.CompleteDueTx(ctx, tx, cutoff, s.cfg.Jobs.BatchSize, lifecycle.System.String())
		if err != nil {
			return err // nolint:wrapcheck
		}

		for _, booking := range bookings {
			payload := event(booking, lifecycle.System, now)
			payload.PreviousStatus = string(lifecycle.BookingConfirmed)

			if err = s.deps.Outbox.Record(ctx, tx, outboxModel.EventReservationStatusChanged, payload); err != nil {
				return err // nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to complete due bookings")

		return 0, fmt.Errorf("failed to complete due bookings: %w", err)
	}

	resources := make([]uuid.UUID, len(bookings))
	for i, booking := range bookings {
		resources[i] = booking.ResourceID
	}

	s.invalidate(ctx, resources...)

	return len(bookings), nil
}

// lockBooking loads a booking for update and hides bookings the actor may not see.
func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByBusiness(businessID, bookingID, model.TableName))
	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, visible(booking, actor)
}

func (s *serviceImpl) checkCancellationWindow(ctx context.Context, actor lifecycle.Actor, booking model.Booking, now time.Time) error {
	if actor.CanOverride() {
		return nil
	}

	resource, err := s.deps.Resource.Get(ctx, booking.BusinessID, booking.ResourceID)
	if err != nil {
		return err // nolint:wrapcheck
	}

	window := time.Duration(resource.Policy.CancellationWindowMinutes) * time.Minute

	return lifecycle.CheckCancellationWindow(booking.StartAt, now, window, actor) // nolint:wrapcheck
}

// claim covers the candidate widened by the buffer on both sides, so any two bookings whose
// buffered ranges could collide share a lock bucket.
func (s *serviceImpl) claim(resourceID uuid.UUID, candidate interval.Interval, schedule policy.Schedule) reservation.Claim {
	buffer := schedule.Policy.Buffer
	claim := reservation.Claim{
		Scope:  reservation.ScopeStaff,
		ID:     resourceID,
		Window: candidate.Expand(buffer, buffer),
		Bucket: time.Duration(s.cfg.Reservation.LockBucketMinutes) * time.Minute,
	}

	if schedule.Policy.MaxDailyBookings > 0 {
		date := policy.DateOf(candidate.Start, schedule.Location)
		claim.Keys = append(claim.Keys, reservation.DayKey(reservation.ScopeStaff, resourceID, date.String()))
	}

	return claim
}

func (s *serviceImpl) invalidate(ctx context.Context, resourceIDs ...uuid.UUID) {
	if err := shared.InvalidateAvailability(context.WithoutCancel(ctx), s.cache, resourceIDs...); err != nil {
		log.Warn().Err(err).Msg("availability cache may serve stale entries until the next write")
	}
}

// visible hides other customers' bookings behind a not found.
func visible(booking model.Booking, actor lifecycle.Actor) error {
	if booking.ID == uuid.Nil || (!actor.IsStaff() && booking.CustomerID != actor.ID) {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func event(booking model.Booking, actor lifecycle.Actor, now time.Time) outboxModel.Reservation {
	return outboxModel.Reservation{
		ReservationID: booking.ID,
		Kind:          outboxModel.AggregateBooking,
		BusinessID:    booking.BusinessID,
		ResourceID:    booking.ResourceID,
		Interval:      booking.Interval(),
		Quantity:      1,
		Status:        string(booking.Status),
		ActorID:       actor.String(),
		OccurredAt:    now,
	}
}
