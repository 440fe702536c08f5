package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"slotkeeper/config"
	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/availability/model/dto"
	"slotkeeper/internal/domains/availability/repository"
	resourceService "slotkeeper/internal/domains/resource/service"
	"slotkeeper/internal/scheduling/availability"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/internal/scheduling/slot"
	"slotkeeper/shared"
	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/shared/timezone"
)

const hoursPerDay = 24

type Availability interface {
	// Resolve returns the open intervals of a resource inside window, in the resource's timezone.
	Resolve(ctx context.Context, businessID, resourceID uuid.UUID, window interval.Interval) (dto.AvailabilityResponse, error)
	GetAvailableSlots(ctx context.Context, businessID, resourceID, serviceID uuid.UUID, window interval.Interval) (dto.SlotsResponse, error)
	// Verify re-checks a candidate against committed state from inside a reservation transaction.
	Verify(ctx context.Context, sqltx *sqlx.Tx, req Verification) error
}

// Verification is one commit-time availability check.
type Verification struct {
	ResourceID uuid.UUID
	Schedule   policy.Schedule
	Candidate  interval.Interval
	// Exclude is a booking that must not block itself, e.g. while it is being rescheduled.
	Exclude uuid.UUID
	Now     time.Time
}

type serviceImpl struct {
	busy     repository.Busy
	resource resourceService.Resource
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(busy repository.Busy, resource resourceService.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		busy:     busy,
		resource: resource,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, businessID, resourceID uuid.UUID, window interval.Interval) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	open, schedule, err := s.openDays(ctx, businessID, resourceID, window)
	if err != nil {
		return res, err
	}

	intervals := interval.Clip(open, window)
	for i := range intervals {
		intervals[i] = intervals[i].In(schedule.Location)
	}

	return dto.AvailabilityResponse{
		ResourceID: resourceID,
		Timezone:   schedule.Location.String(),
		Intervals:  intervals,
	}, nil
}

func (s *serviceImpl) GetAvailableSlots(ctx context.Context, businessID, resourceID, serviceID uuid.UUID, window interval.Interval) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetAvailableSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	duration, err := s.resource.GetServiceDuration(ctx, businessID, serviceID)
	if err != nil {
		return res, err
	}

	open, schedule, err := s.openDays(ctx, businessID, resourceID, window)
	if err != nil {
		return res, err
	}

	loc := schedule.Location
	envelope := schedule.Policy.Envelope(loc)
	opts := slot.Options{DisplayStep: time.Duration(s.cfg.Scheduling.DisplayStepMinutes) * time.Minute}

	if envelope.MaxDailyBookings > 0 {
		dates := policy.DatesOf(window, loc)
		days := interval.Interval{Start: dates[0].Start(loc), End: dates[len(dates)-1].End(loc)}

		opts.Booked, err = s.busy.CountPerDay(ctx, resourceID, days, loc, uuid.Nil)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings per day")

			return res, fmt.Errorf("failed to count bookings per day: %w", err)
		}
	}

	// Slots are generated over whole days so the fixed grid does not move with the window.
	slots := []interval.Interval{}

	for _, candidate := range slot.Generate(open, duration, envelope, timezone.Now(), opts) {
		if window.Contains(candidate) {
			slots = append(slots, candidate.In(loc))
		}
	}

	return dto.SlotsResponse{
		ResourceID:      resourceID,
		ServiceID:       serviceID,
		Timezone:        loc.String(),
		DurationMinutes: int(duration / time.Minute),
		Slots:           slots,
	}, nil
}

func (s *serviceImpl) Verify(ctx context.Context, sqltx *sqlx.Tx, req Verification) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loc := req.Schedule.Location
	envelope := req.Schedule.Policy.Envelope(loc)

	if err = envelope.Admit(req.Candidate.Start, req.Now); err != nil {
		return err
	}

	buffer := req.Schedule.Policy.Buffer

	bookings, err := s.busy.BookingsTx(ctx, sqltx, req.ResourceID, req.Candidate.Expand(buffer, buffer), req.Exclude)
	if err != nil {
		return fmt.Errorf("failed to get busy bookings: %w", err)
	}

	external, err := s.busy.ExternalTx(ctx, sqltx, req.ResourceID, req.Candidate)
	if err != nil {
		return fmt.Errorf("failed to get external busy intervals: %w", err)
	}

	dates := policy.DatesOf(req.Candidate, loc)
	days := make([]policy.Day, len(dates))

	for i, date := range dates {
		days[i] = req.Schedule.Resolve(date)
	}

	if !availability.Fits(req.Candidate, days, availability.Busy{Bookings: bookings, External: external}) {
		return fmt.Errorf("%w: %s", failure.ErrSlotNoLongerAvailable, req.Candidate)
	}

	if envelope.MaxDailyBookings <= 0 {
		return nil
	}

	date := policy.DateOf(req.Candidate.Start, loc)

	counts, err := s.busy.CountPerDayTx(ctx, sqltx, req.ResourceID, date.Window(loc), loc, req.Exclude)
	if err != nil {
		return fmt.Errorf("failed to count bookings per day: %w", err)
	}

	if counts[date] >= envelope.MaxDailyBookings {
		return fmt.Errorf("%w: %s already has %d bookings", failure.ErrPolicyViolation, date, counts[date])
	}

	return nil
}

// openDays resolves every local date window touches and returns their open time, unclipped and
// merged across midnight. Cached dates are reused; the rest share a single busy fetch.
func (s *serviceImpl) openDays(ctx context.Context, businessID, resourceID uuid.UUID, window interval.Interval) ([]interval.Interval, policy.Schedule, error) {
	if !window.Valid() {
		return nil, policy.Schedule{}, failure.BadRequestFromString("from must be before to") // nolint:wrapcheck
	}

	if maxDays := s.cfg.Scheduling.MaxRangeDays; window.Duration() > time.Duration(maxDays)*hoursPerDay*time.Hour {
		return nil, policy.Schedule{}, fmt.Errorf("%w: at most %d days per request", failure.ErrRangeTooLarge, maxDays)
	}

	schedule, err := s.resource.LoadSchedule(ctx, businessID, resourceID, window)
	if err != nil {
		return nil, schedule, err
	}

	loc := schedule.Location
	dates := policy.DatesOf(window, loc)
	generation, cacheable := s.generation(ctx, resourceID)

	resolved := make(map[policy.Date][]interval.Interval, len(dates))
	missing := []policy.Date{}

	for _, date := range dates {
		if cacheable {
			if open, ok := s.cached(ctx, businessID, resourceID, generation, date); ok {
				resolved[date] = open

				continue
			}
		}

		missing = append(missing, date)
	}

	if len(missing) > 0 {
		buffer := schedule.Policy.Buffer
		span := interval.Interval{Start: missing[0].Start(loc), End: missing[len(missing)-1].End(loc)}

		busy, err := s.fetchBusy(ctx, resourceID, span, buffer)
		if err != nil {
			return nil, schedule, err
		}

		for _, date := range missing {
			open := availability.Open(schedule.Resolve(date), busy)
			resolved[date] = open

			if cacheable {
				key := shared.AvailabilityCacheKey(businessID, resourceID, generation, date.String())
				if err := s.cache.Save(ctx, key, open, s.cfg.Cache.TTL); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to cache availability")
				}
			}
		}
	}

	open := []interval.Interval{}
	for _, date := range dates {
		open = append(open, resolved[date]...)
	}

	return interval.Merge(open), schedule, nil
}

// fetchBusy reads bookings and imported events once for span, widened by buffer so bookings
// just outside the span still push their buffer into it.
func (s *serviceImpl) fetchBusy(ctx context.Context, resourceID uuid.UUID, span interval.Interval, buffer time.Duration) (availability.Busy, error) {
	var busy availability.Busy

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		busy.Bookings, err = s.busy.Bookings(gctx, resourceID, span.Expand(buffer, buffer), uuid.Nil)

		return err
	})

	group.Go(func() (err error) {
		busy.External, err = s.busy.External(gctx, resourceID, span)

		return err
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Str("resource_id", resourceID.String()).Msg("failed to get busy time")

		return busy, fmt.Errorf("failed to get busy time: %w", err)
	}

	return busy, nil
}

// generation reads the resource's cache generation. A cache failure disables caching for the call.
func (s *serviceImpl) generation(ctx context.Context, resourceID uuid.UUID) (int64, bool) {
	generation, err := s.cache.Counter(ctx, shared.AvailabilityGenerationKey(resourceID))
	if err != nil {
		log.Warn().Err(err).Str("resource_id", resourceID.String()).Msg("availability cache unavailable")

		return 0, false
	}

	return generation, true
}

func (s *serviceImpl) cached(ctx context.Context, businessID, resourceID uuid.UUID, generation int64, date policy.Date) ([]interval.Interval, bool) {
	var open []interval.Interval

	err := s.cache.Get(ctx, shared.AvailabilityCacheKey(businessID, resourceID, generation, date.String()), &open)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Msg("failed to read availability cache")
		}

		return nil, false
	}

	return open, true
}
