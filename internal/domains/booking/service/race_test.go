package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"slotkeeper/infras/otel/mocks"
	availabilityService "slotkeeper/internal/domains/availability/service"
	"slotkeeper/internal/domains/booking/model"
	bookingDto "slotkeeper/internal/domains/booking/model/dto"
	"slotkeeper/internal/domains/booking/repository"
	"slotkeeper/internal/domains/booking/service"
	outboxMocks "slotkeeper/internal/domains/outbox/service/mocks"
	resourceMocks "slotkeeper/internal/domains/resource/service/mocks"
	"slotkeeper/internal/reservation"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
	cacheMocks "slotkeeper/shared/cache/mocks"
	"slotkeeper/shared/failure"
)

// store is an in-memory bookings table shared by the fakes below.
type store struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (s *store) overlapping(resourceID uuid.UUID, window interval.Interval) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ResourceID == resourceID && b.Status.Blocking() && interval.Overlaps(interval.Interval{Start: b.StartAt, End: b.BlockedUntil}, window) {
			return true
		}
	}

	return false
}

// lockingManager serializes every commit, standing in for overlapping advisory locks.
type lockingManager struct {
	mu sync.Mutex
}

func (m *lockingManager) Commit(ctx context.Context, _ reservation.Claim, fn reservation.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx, nil)
}

func (m *lockingManager) InTx(ctx context.Context, fn reservation.TxFunc) error {
	return m.Commit(ctx, reservation.Claim{}, fn)
}

type memoryRepository struct {
	repository.Booking
	store *store
}

func (r *memoryRepository) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.bookings = append(r.store.bookings, booking)

	return nil
}

type memoryAvailability struct {
	availabilityService.Availability
	store *store
}

func (a *memoryAvailability) Verify(_ context.Context, _ *sqlx.Tx, req availabilityService.Verification) error {
	if a.store.overlapping(req.ResourceID, req.Candidate) {
		return failure.ErrSlotNoLongerAvailable
	}

	return nil
}

func TestReserve_ConcurrentSameSlot(t *testing.T) {
	const callers = 16

	ctrl := gomock.NewController(t)
	db := &store{}

	resource := resourceMocks.NewMockResource(ctrl)
	resource.EXPECT().GetServiceDuration(gomock.Any(), businessID, serviceID).Return(time.Hour, nil).AnyTimes()
	resource.EXPECT().LoadSchedule(gomock.Any(), businessID, resourceID, gomock.Any()).
		Return(policy.Schedule{Location: time.UTC}, nil).AnyTimes()

	outbox := outboxMocks.NewMockOutbox(ctrl)
	outbox.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()

	svc := service.New(&memoryRepository{store: db}, service.Dependencies{
		Manager:      &lockingManager{},
		Availability: &memoryAvailability{store: db},
		Resource:     resource,
		Outbox:       outbox,
	}, newConfig(), cache, mocks.NewOtel())

	start := tomorrow9()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := bookingDto.ReserveRequest{ResourceID: resourceID, ServiceID: serviceID, CustomerID: uuid.New(), Start: start}

			_, err := svc.Reserve(context.Background(), staff, businessID, req, "")

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, failure.ErrSlotNoLongerAvailable)
				rejected++
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, rejected)
	assert.Len(t, db.bookings, 1)
}
