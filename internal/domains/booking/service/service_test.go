package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"slotkeeper/config"
	"slotkeeper/infras/otel/mocks"
	availabilityService "slotkeeper/internal/domains/availability/service"
	availabilityMocks "slotkeeper/internal/domains/availability/service/mocks"
	bookingMocks "slotkeeper/internal/domains/booking/mocks"
	"slotkeeper/internal/domains/booking/model"
	"slotkeeper/internal/domains/booking/model/dto"
	"slotkeeper/internal/domains/booking/service"
	outboxModel "slotkeeper/internal/domains/outbox/model"
	outboxMocks "slotkeeper/internal/domains/outbox/service/mocks"
	resourceDto "slotkeeper/internal/domains/resource/model/dto"
	resourceMocks "slotkeeper/internal/domains/resource/service/mocks"
	"slotkeeper/internal/reservation"
	reservationMocks "slotkeeper/internal/reservation/mocks"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared"
	cacheMocks "slotkeeper/shared/cache/mocks"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
)

var (
	businessID = uuid.MustParse("0d6f2a8e-1c1b-4f7a-9a57-3c1f7f4d2b10")
	resourceID = uuid.MustParse("5a3b9c1d-7e2f-4a6b-8c9d-0e1f2a3b4c5d")
	serviceID  = uuid.MustParse("9c8b7a6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d")
	customer   = lifecycle.Actor{ID: uuid.MustParse("3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"), Role: constant.RoleCustomer}
	staff      = lifecycle.Actor{ID: uuid.New(), Role: constant.RoleStaff}
	manager    = lifecycle.Actor{ID: uuid.New(), Role: constant.RoleManager}
)

// tomorrow9 is 09:00 UTC two days from now, far enough ahead for any advance rule used here.
func tomorrow9() time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 2).Add(9 * time.Hour)
}

type fixture struct {
	repo         *bookingMocks.MockBooking
	idempotency  *reservationMocks.MockIdempotency
	manager      *reservationMocks.MockManager
	availability *availabilityMocks.MockAvailability
	resource     *resourceMocks.MockResource
	outbox       *outboxMocks.MockOutbox
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		idempotency:  reservationMocks.NewMockIdempotency(ctrl),
		manager:      reservationMocks.NewMockManager(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		resource:     resourceMocks.NewMockResource(ctrl),
		outbox:       outboxMocks.NewMockOutbox(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, service.Dependencies{
		Idempotency:  f.idempotency,
		Manager:      f.manager,
		Availability: f.availability,
		Resource:     f.resource,
		Outbox:       f.outbox,
	}, newConfig(), f.cache, mocks.NewOtel())

	return f
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Reservation.LockBucketMinutes = 60
	cfg.Jobs.CompletionGraceMinutes = 30
	cfg.Jobs.BatchSize = 100

	return cfg
}

func (f *fixture) expectCommit(check func(claim reservation.Claim)) {
	f.manager.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, claim reservation.Claim, fn reservation.TxFunc) error {
			if check != nil {
				check(claim)
			}

			return fn(ctx, nil)
		})
}

func (f *fixture) expectInTx() {
	f.manager.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn reservation.TxFunc) error {
			return fn(ctx, nil)
		})
}

func (f *fixture) expectSchedule(p policy.Policy) {
	f.resource.EXPECT().LoadSchedule(gomock.Any(), businessID, resourceID, gomock.Any()).
		Return(policy.Schedule{Policy: p, Location: time.UTC}, nil)
}

func (f *fixture) expectInvalidate(ids ...uuid.UUID) {
	for _, id := range ids {
		f.cache.EXPECT().Increment(gomock.Any(), shared.AvailabilityGenerationKey(id)).Return(int64(1), nil)
	}
}

func (f *fixture) expectLock(booking model.Booking) {
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), shared.FilterByBusiness(businessID, booking.ID, model.TableName)).
		Return(booking, nil)
}

func (f *fixture) expectEvent(eventType string, check func(payload outboxModel.Reservation)) {
	f.outbox.EXPECT().Record(gomock.Any(), gomock.Any(), eventType, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, payload outboxModel.Reservation) error {
			if check != nil {
				check(payload)
			}

			return nil
		})
}

func existing(status lifecycle.BookingStatus, owner uuid.UUID) model.Booking {
	start := tomorrow9()

	return model.Booking{
		ID:           uuid.New(),
		BusinessID:   businessID,
		ResourceID:   resourceID,
		ServiceID:    serviceID,
		CustomerID:   owner,
		StartAt:      start,
		EndAt:        start.Add(time.Hour),
		BlockedUntil: start.Add(time.Hour),
		Status:       status,
	}
}

func TestReserve(t *testing.T) {
	start := tomorrow9()

	tests := []struct {
		name       string
		actor      lifecycle.Actor
		req        dto.ReserveRequest
		policy     policy.Policy
		wantStatus lifecycle.BookingStatus
		wantKeys   int
	}{
		{
			name:       "customer books pending",
			actor:      customer,
			req:        dto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, Start: start},
			policy:     policy.Policy{Buffer: 15 * time.Minute},
			wantStatus: lifecycle.BookingPending,
		},
		{
			name:       "auto confirm with daily cap",
			actor:      staff,
			req:        dto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, CustomerID: customer.ID, Start: start},
			policy:     policy.Policy{Buffer: 15 * time.Minute, AutoConfirm: true, MaxDailyBookings: 4},
			wantStatus: lifecycle.BookingConfirmed,
			wantKeys:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil)
			f.expectSchedule(tt.policy)
			f.expectCommit(func(claim reservation.Claim) {
				assert.Equal(t, reservation.ScopeStaff, claim.Scope)
				assert.Equal(t, resourceID, claim.ID)
				assert.Equal(t, start.Add(-15*time.Minute), claim.Window.Start)
				assert.Equal(t, start.Add(75*time.Minute), claim.Window.End)
				assert.Equal(t, time.Hour, claim.Bucket)
				assert.Len(t, claim.Keys, tt.wantKeys)
			})
			f.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req availabilityService.Verification) error {
					assert.Equal(t, interval.Interval{Start: start, End: start.Add(time.Hour)}, req.Candidate)
					assert.Equal(t, uuid.Nil, req.Exclude)

					return nil
				})
			f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
					assert.Equal(t, tt.wantStatus, booking.Status)
					assert.Equal(t, customer.ID, booking.CustomerID)
					assert.Equal(t, start.Add(75*time.Minute), booking.BlockedUntil)

					return nil
				})
			f.expectEvent(outboxModel.EventReservationCreated, func(payload outboxModel.Reservation) {
				assert.Equal(t, string(tt.wantStatus), payload.Status)
				assert.Equal(t, 1, payload.Quantity)
			})
			f.expectInvalidate(resourceID)

			res, err := f.svc.Reserve(context.Background(), tt.actor, businessID, tt.req, "")
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, start.Add(time.Hour), res.End)
		})
	}
}

func TestReserve_StaffWithoutCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Reserve(context.Background(), staff, businessID, dto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, Start: tomorrow9()}, "")

	assert.Equal(t, 400, failure.GetCode(err))
}

func TestReserve_CommitFailures(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		commitErr error
		wantErr   error
	}{
		{name: "slot taken", verifyErr: failure.ErrSlotNoLongerAvailable, wantErr: failure.ErrSlotNoLongerAvailable},
		{name: "daily cap reached", verifyErr: failure.ErrPolicyViolation, wantErr: failure.ErrPolicyViolation},
		{name: "lock timeout", commitErr: failure.ErrReservationContended, wantErr: failure.ErrReservationContended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil)
			f.expectSchedule(policy.Policy{})

			if tt.commitErr != nil {
				f.manager.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.commitErr)
			} else {
				f.expectCommit(nil)
				f.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.verifyErr)
			}

			req := dto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, Start: tomorrow9()}

			_, err := f.svc.Reserve(context.Background(), customer, businessID, req, "")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, errors.Is(tt.wantErr, failure.ErrReservationContended), failure.IsRetryable(err))
		})
	}
}

func TestReserve_Idempotent(t *testing.T) {
	start := tomorrow9()
	req := dto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, Start: start}

	hashed := req
	hashed.CustomerID = customer.ID

	hash, err := reservation.RequestHash(hashed)
	require.NoError(t, err)

	first := existing(lifecycle.BookingPending, customer.ID)

	t.Run("replay returns the first booking", func(t *testing.T) {
		f := newFixture(t)

		f.resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil)
		f.expectSchedule(policy.Policy{})
		f.expectCommit(nil)
		f.idempotency.EXPECT().FindTx(gomock.Any(), gomock.Any(), businessID, "retry-1").
			Return(reservation.IdempotencyRecord{Key: "retry-1", Kind: reservation.KindBooking, RequestHash: hash, ReservationID: first.ID}, true, nil)
		f.repo.EXPECT().Get(gomock.Any(), shared.FilterByBusiness(businessID, first.ID, model.TableName)).Return(first, nil)

		res, err := f.svc.Reserve(context.Background(), customer, businessID, req, "retry-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, res.ID)
	})

	t.Run("first use stores the key", func(t *testing.T) {
		f := newFixture(t)

		f.resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil)
		f.expectSchedule(policy.Policy{})
		f.expectCommit(nil)
		f.idempotency.EXPECT().FindTx(gomock.Any(), gomock.Any(), businessID, "retry-1").Return(reservation.IdempotencyRecord{}, false, nil)
		f.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.idempotency.EXPECT().SaveTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, record reservation.IdempotencyRecord) error {
				assert.Equal(t, hash, record.RequestHash)
				assert.Equal(t, reservation.KindBooking, record.Kind)

				return nil
			})
		f.expectEvent(outboxModel.EventReservationCreated, nil)
		f.expectInvalidate(resourceID)

		_, err := f.svc.Reserve(context.Background(), customer, businessID, req, "retry-1")
		require.NoError(t, err)
	})

	t.Run("key reused for another request", func(t *testing.T) {
		f := newFixture(t)

		f.resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil)
		f.expectSchedule(policy.Policy{})
		f.expectCommit(nil)
		f.idempotency.EXPECT().FindTx(gomock.Any(), gomock.Any(), businessID, "retry-1").
			Return(reservation.IdempotencyRecord{Key: "retry-1", Kind: reservation.KindBooking, RequestHash: "other", ReservationID: first.ID}, true, nil)

		_, err := f.svc.Reserve(context.Background(), customer, businessID, req, "retry-1")
		assert.ErrorIs(t, err, failure.ErrIdempotencyKeyMismatch)
	})
}

func TestGet_HidesOtherCustomers(t *testing.T) {
	f := newFixture(t)
	booking := existing(lifecycle.BookingConfirmed, uuid.New())

	f.repo.EXPECT().Get(gomock.Any(), shared.FilterByBusiness(businessID, booking.ID, model.TableName)).Return(booking, nil).Times(2)

	_, err := f.svc.Get(context.Background(), customer, businessID, booking.ID)
	assert.Equal(t, 404, failure.GetCode(err))

	res, err := f.svc.Get(context.Background(), staff, businessID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, res.ID)
}

func TestList_CustomerSeesOwnBookings(t *testing.T) {
	f := newFixture(t)
	query := dto.ListQuery{}
	query.Limit = 10

	want := dto.ListQuery{CustomerID: customer.ID}.Filter(businessID)

	f.repo.EXPECT().Count(gomock.Any(), want).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), query.QueryParams, want).Return([]model.Booking{existing(lifecycle.BookingPending, customer.ID)}, nil)

	res, err := f.svc.List(context.Background(), customer, businessID, query)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Bookings, 1)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       lifecycle.BookingStatus
		call       func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error)
		want       lifecycle.BookingStatus
		invalidate bool
		wantErr    error
	}{
		{
			name: "confirm pending",
			from: lifecycle.BookingPending,
			call: func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error) {
				return svc.Confirm(context.Background(), staff, businessID, id)
			},
			want: lifecycle.BookingConfirmed,
		},
		{
			name: "complete confirmed",
			from: lifecycle.BookingConfirmed,
			call: func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error) {
				return svc.Complete(context.Background(), staff, businessID, id)
			},
			want:       lifecycle.BookingCompleted,
			invalidate: true,
		},
		{
			name: "no show confirmed",
			from: lifecycle.BookingConfirmed,
			call: func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error) {
				return svc.MarkNoShow(context.Background(), staff, businessID, id)
			},
			want:       lifecycle.BookingNoShow,
			invalidate: true,
		},
		{
			name: "complete pending is illegal",
			from: lifecycle.BookingPending,
			call: func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error) {
				return svc.Complete(context.Background(), staff, businessID, id)
			},
			wantErr: failure.ErrInvalidTransition,
		},
		{
			name: "confirm cancelled is illegal",
			from: lifecycle.BookingCancelled,
			call: func(svc service.Booking, id uuid.UUID) (dto.BookingResponse, error) {
				return svc.Confirm(context.Background(), staff, businessID, id)
			},
			wantErr: failure.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			booking := existing(tt.from, customer.ID)

			f.expectInTx()
			f.expectLock(booking)

			if tt.wantErr == nil {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), shared.FilterByID(booking.ID, model.FieldID, model.TableName)).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.want, mod[model.FieldStatus])

						return nil
					})
				f.expectEvent(outboxModel.EventReservationStatusChanged, func(payload outboxModel.Reservation) {
					assert.Equal(t, string(tt.from), payload.PreviousStatus)
					assert.Equal(t, string(tt.want), payload.Status)
				})
			}

			if tt.invalidate {
				f.expectInvalidate(resourceID)
			}

			res, err := tt.call(f.svc, booking.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		actor   lifecycle.Actor
		owner   uuid.UUID
		status  lifecycle.BookingStatus
		window  int
		wantErr error
		code    int
	}{
		{name: "customer outside window", actor: customer, owner: customer.ID, status: lifecycle.BookingConfirmed, window: 60},
		{name: "customer inside window", actor: customer, owner: customer.ID, status: lifecycle.BookingConfirmed, window: 72 * 60, wantErr: failure.ErrPolicyViolation},
		{name: "manager overrides window", actor: manager, owner: customer.ID, status: lifecycle.BookingPending, window: 72 * 60},
		{name: "already completed", actor: manager, owner: customer.ID, status: lifecycle.BookingCompleted, wantErr: failure.ErrInvalidTransition},
		{name: "someone else's booking", actor: customer, owner: uuid.New(), status: lifecycle.BookingConfirmed, code: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			booking := existing(tt.status, tt.owner)

			f.expectInTx()
			f.expectLock(booking)

			if tt.code == 0 && tt.status.Blocking() && !tt.actor.CanOverride() {
				resource := resourceDto.ResourceResponse{ID: resourceID}
				resource.Policy.CancellationWindowMinutes = tt.window
				f.resource.EXPECT().Get(gomock.Any(), businessID, resourceID).Return(resource, nil)
			}

			succeeds := tt.wantErr == nil && tt.code == 0
			if succeeds {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, lifecycle.BookingCancelled, mod[model.FieldStatus])
						assert.Equal(t, "sick", mod[model.FieldCancelReason])
						assert.Equal(t, tt.actor.String(), mod[model.FieldCancelledBy])

						return nil
					})
				f.expectEvent(outboxModel.EventReservationCancelled, func(payload outboxModel.Reservation) {
					assert.Equal(t, "sick", payload.Reason)
					assert.Equal(t, tt.actor.String(), payload.ActorID)
				})
				f.expectInvalidate(resourceID)
			}

			res, err := f.svc.Cancel(context.Background(), tt.actor, businessID, booking.ID, dto.CancelRequest{Reason: "sick"})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.code != 0:
				assert.Equal(t, tt.code, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, lifecycle.BookingCancelled, res.Status)
				assert.Equal(t, "sick", res.CancelReason)
			}
		})
	}
}

func TestReschedule(t *testing.T) {
	t.Run("moves and keeps status", func(t *testing.T) {
		f := newFixture(t)
		booking := existing(lifecycle.BookingConfirmed, customer.ID)
		newStart := booking.StartAt.Add(3 * time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), shared.FilterByBusiness(businessID, booking.ID, model.TableName)).Return(booking, nil)
		f.expectSchedule(policy.Policy{Buffer: 10 * time.Minute})
		f.expectCommit(func(claim reservation.Claim) {
			assert.Equal(t, newStart.Add(-10*time.Minute), claim.Window.Start)
		})
		f.expectLock(booking)
		f.availability.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req availabilityService.Verification) error {
				assert.Equal(t, booking.ID, req.Exclude)
				assert.Equal(t, interval.Interval{Start: newStart, End: newStart.Add(time.Hour)}, req.Candidate)

				return nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, newStart.Add(70*time.Minute), mod[model.FieldBlockedUntil])
				assert.NotContains(t, mod, model.FieldStatus)

				return nil
			})
		f.expectEvent(outboxModel.EventReservationRescheduled, func(payload outboxModel.Reservation) {
			require.NotNil(t, payload.PreviousInterval)
			assert.Equal(t, booking.StartAt, payload.PreviousInterval.Start)
		})
		f.expectInvalidate(resourceID)

		res, err := f.svc.Reschedule(context.Background(), manager, businessID, booking.ID, dto.RescheduleRequest{Start: newStart})
		require.NoError(t, err)

		assert.Equal(t, lifecycle.BookingConfirmed, res.Status)
		assert.Equal(t, newStart, res.Start)
	})

	t.Run("cancelled booking cannot move", func(t *testing.T) {
		f := newFixture(t)
		booking := existing(lifecycle.BookingCancelled, customer.ID)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.expectSchedule(policy.Policy{})
		f.expectCommit(nil)
		f.expectLock(booking)

		_, err := f.svc.Reschedule(context.Background(), manager, businessID, booking.ID, dto.RescheduleRequest{Start: booking.StartAt.Add(time.Hour)})
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFixture(t)
		booking := existing(lifecycle.BookingPending, customer.ID)
		end := booking.StartAt

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.Reschedule(context.Background(), manager, businessID, booking.ID, dto.RescheduleRequest{Start: booking.StartAt.Add(time.Hour), End: &end})
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestCompleteDue(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()

	first := existing(lifecycle.BookingCompleted, customer.ID)
	second := existing(lifecycle.BookingCompleted, customer.ID)
	second.ResourceID = other

	f.expectInTx()
	f.repo.EXPECT().CompleteDueTx(gomock.Any(), gomock.Any(), gomock.Any(), 100, constant.ContextSystem).Return([]model.Booking{first, second}, nil)
	f.outbox.EXPECT().Record(gomock.Any(), gomock.Any(), outboxModel.EventReservationStatusChanged, gomock.Any()).Return(nil).Times(2)
	f.expectInvalidate(resourceID, other)

	completed, err := f.svc.CompleteDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
}
