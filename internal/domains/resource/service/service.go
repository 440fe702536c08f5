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
	"slotkeeper/internal/domains/resource/model"
	"slotkeeper/internal/domains/resource/model/dto"
	"slotkeeper/internal/domains/resource/repository"
	"slotkeeper/internal/reservation"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/internal/scheduling/policy"
	"slotkeeper/shared"
	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
	gDto "slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
	gModel "slotkeeper/shared/model"
	"slotkeeper/shared/timezone"
)

type Resource interface {
	Get(ctx context.Context, businessID, resourceID uuid.UUID) (dto.ResourceResponse, error)
	// LoadSchedule returns everything needed to resolve the resource's open time inside window.
	LoadSchedule(ctx context.Context, businessID, resourceID uuid.UUID, window interval.Interval) (policy.Schedule, error)
	GetServiceDuration(ctx context.Context, businessID, serviceID uuid.UUID) (time.Duration, error)
	SetWorkingHours(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, req dto.WorkingHoursRequest) error
	SetException(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, date string, req dto.ExceptionRequest) error
	DeleteException(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, date string) error
	SetBusinessPolicy(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.PolicyRequest) error
	SetResourcePolicy(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, req dto.PolicyRequest) error
}

type Repositories struct {
	Business    repository.Business
	Resource    repository.Resource
	Policy      repository.Policy
	WorkingHour repository.WorkingHour
	Exception   repository.Exception
	Service     repository.Service
}

type serviceImpl struct {
	repos   Repositories
	manager reservation.Manager
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repos Repositories, manager reservation.Manager, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Resource {
	return &serviceImpl{
		repos:   repos,
		manager: manager,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, businessID, resourceID uuid.UUID) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resource, err := s.getResource(ctx, businessID, resourceID)
	if err != nil {
		return res, err
	}

	hours, err := s.workingHours(ctx, resourceID)
	if err != nil {
		return res, err
	}

	policies, err := s.repos.Policy.ForResource(ctx, businessID, resourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking policies")

		return res, fmt.Errorf("failed to get booking policies: %w", err)
	}

	res.FromModel(resource, hours, model.EffectivePolicy(policies))

	return res, nil
}

func (s *serviceImpl) LoadSchedule(ctx context.Context, businessID, resourceID uuid.UUID, window interval.Interval) (schedule policy.Schedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.LoadSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resource, err := s.getResource(ctx, businessID, resourceID)
	if err != nil {
		return schedule, err
	}

	if !resource.Active {
		return schedule, fmt.Errorf("%w: resource is inactive", failure.ErrResourceNotFound)
	}

	loc, err := s.location(ctx, resource)
	if err != nil {
		return schedule, err
	}

	hours, err := s.workingHours(ctx, resourceID)
	if err != nil {
		return schedule, err
	}

	policies, err := s.repos.Policy.ForResource(ctx, businessID, resourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking policies")

		return schedule, fmt.Errorf("failed to get booking policies: %w", err)
	}

	exceptions := map[policy.Date]policy.Exception{}

	if dates := policy.DatesOf(window, loc); len(dates) > 0 {
		first, last := dates[0], dates[len(dates)-1]

		rows, err := s.repos.Exception.Between(ctx, resourceID, first.Start(time.UTC), last.Start(time.UTC))
		if err != nil {
			log.Error().Err(err).Msg("failed to get availability exceptions")

			return schedule, fmt.Errorf("failed to get availability exceptions: %w", err)
		}

		for _, row := range rows {
			exception, err := row.ToPolicy()
			if err != nil {
				return schedule, err
			}

			exceptions[exception.Date] = exception
		}
	}

	return policy.Schedule{
		Hours:      hours,
		Exceptions: exceptions,
		Policy:     model.EffectivePolicy(policies),
		Location:   loc,
	}, nil
}

func (s *serviceImpl) GetServiceDuration(ctx context.Context, businessID, serviceID uuid.UUID) (duration time.Duration, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.GetServiceDuration")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	svc, err := s.repos.Service.Get(ctx, shared.FilterByBusiness(businessID, serviceID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return 0, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == uuid.Nil || !svc.Active {
		return 0, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return time.Duration(svc.DurationMinutes) * time.Minute, nil
}

func (s *serviceImpl) SetWorkingHours(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, req dto.WorkingHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.SetWorkingHours")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hours, err := req.ToWorkingHours()
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getResource(ctx, businessID, resourceID); err != nil {
		return err
	}

	rows := dto.WorkingHoursToModels(resourceID, hours, gModel.NewMetadata(timezone.Now(), actor.String()))

	err = s.manager.InTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(resourceID, model.FieldResourceID, model.WorkingHourTableName)
		if err := s.repos.WorkingHour.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to clear working hours: %w", err)
		}

		if err := s.repos.WorkingHour.InsertBulkTx(ctx, tx, rows); err != nil {
			return fmt.Errorf("failed to insert working hours: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("resource_id", resourceID.String()).Msg("failed to set working hours")

		return err
	}

	s.invalidate(ctx, resourceID)

	return nil
}

func (s *serviceImpl) SetException(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, date string, req dto.ExceptionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.SetException")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := policy.ParseDate(date)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	exception, err := req.ToModel(resourceID, day, gModel.NewMetadata(timezone.Now(), actor.String()))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getResource(ctx, businessID, resourceID); err != nil {
		return err
	}

	if err = s.repos.Exception.Upsert(ctx, exception); err != nil {
		log.Error().Err(err).Msg("failed to save availability exception")

		return fmt.Errorf("failed to save availability exception: %w", err)
	}

	s.invalidate(ctx, resourceID)

	return nil
}

func (s *serviceImpl) DeleteException(ctx context.Context, _ lifecycle.Actor, businessID, resourceID uuid.UUID, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.DeleteException")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := policy.ParseDate(date)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getResource(ctx, businessID, resourceID); err != nil {
		return err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldResourceID, Value: resourceID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldExceptionDate, Value: day.String(), Operator: gDto.FilterOperatorEq},
		},
	}

	if err = s.repos.Exception.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete availability exception")

		return fmt.Errorf("failed to delete availability exception: %w", err)
	}

	s.invalidate(ctx, resourceID)

	return nil
}

func (s *serviceImpl) SetBusinessPolicy(ctx context.Context, actor lifecycle.Actor, businessID uuid.UUID, req dto.PolicyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.SetBusinessPolicy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	row, err := req.ToModel(businessID, uuid.NullUUID{}, gModel.NewMetadata(timezone.Now(), actor.String()))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	business, err := s.repos.Business.Get(ctx, shared.FilterByID(businessID, model.FieldID, model.BusinessTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business")

		return fmt.Errorf("failed to get business: %w", err)
	}

	if business.ID == uuid.Nil {
		return failure.NotFound("business not found") // nolint:wrapcheck
	}

	if err = s.repos.Policy.Upsert(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to save business policy")

		return fmt.Errorf("failed to save business policy: %w", err)
	}

	// Every resource of the business may inherit this policy.
	resources, err := s.repos.Resource.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(businessID, model.FieldBusinessID, model.TableName), model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list resources for cache invalidation")

		return nil
	}

	ids := make([]uuid.UUID, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}

	s.invalidate(ctx, ids...)

	return nil
}

func (s *serviceImpl) SetResourcePolicy(ctx context.Context, actor lifecycle.Actor, businessID, resourceID uuid.UUID, req dto.PolicyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.SetResourcePolicy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	row, err := req.ToModel(businessID, uuid.NullUUID{UUID: resourceID, Valid: true}, gModel.NewMetadata(timezone.Now(), actor.String()))
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getResource(ctx, businessID, resourceID); err != nil {
		return err
	}

	if err = s.repos.Policy.Upsert(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to save resource policy")

		return fmt.Errorf("failed to save resource policy: %w", err)
	}

	s.invalidate(ctx, resourceID)

	return nil
}

func (s *serviceImpl) getResource(ctx context.Context, businessID, resourceID uuid.UUID) (model.Resource, error) {
	resource, err := s.repos.Resource.Get(ctx, shared.FilterByBusiness(businessID, resourceID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return resource, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == uuid.Nil {
		return resource, failure.ErrResourceNotFound
	}

	return resource, nil
}

// location falls back to the business timezone when the resource has none.
func (s *serviceImpl) location(ctx context.Context, resource model.Resource) (*time.Location, error) {
	name := resource.Timezone

	if name == "" {
		business, err := s.repos.Business.Get(ctx, shared.FilterByID(resource.BusinessID, model.FieldID, model.BusinessTableName), model.FieldTimezone)
		if err != nil {
			return nil, fmt.Errorf("failed to get business timezone: %w", err)
		}

		name = business.Timezone
	}

	loc, err := timezone.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", resource.ID, err)
	}

	return loc, nil
}

func (s *serviceImpl) workingHours(ctx context.Context, resourceID uuid.UUID) (policy.WorkingHours, error) {
	rows, err := s.repos.WorkingHour.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(resourceID, model.FieldResourceID, model.WorkingHourTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get working hours")

		return nil, fmt.Errorf("failed to get working hours: %w", err)
	}

	hours, err := model.WorkingHoursOf(rows).Normalize()
	if err != nil {
		return nil, fmt.Errorf("stored working hours are invalid: %w", err)
	}

	return hours, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, resourceIDs ...uuid.UUID) {
	// The write is committed. A failed bump is logged and stale entries expire with the cache TTL.
	_ = shared.InvalidateAvailability(context.WithoutCancel(ctx), s.cache, resourceIDs...)
}
