//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"slotkeeper/config"
	"slotkeeper/infras/jwt"
	"slotkeeper/infras/kafka"
	"slotkeeper/infras/otel"
	"slotkeeper/infras/postgres"
	"slotkeeper/infras/redis"
	availabilityRepository "slotkeeper/internal/domains/availability/repository"
	availabilityService "slotkeeper/internal/domains/availability/service"
	bookingRepository "slotkeeper/internal/domains/booking/repository"
	bookingService "slotkeeper/internal/domains/booking/service"
	calendarRepository "slotkeeper/internal/domains/calendar/repository"
	calendarService "slotkeeper/internal/domains/calendar/service"
	outboxRepository "slotkeeper/internal/domains/outbox/repository"
	outboxService "slotkeeper/internal/domains/outbox/service"
	rentalRepository "slotkeeper/internal/domains/rental/repository"
	rentalService "slotkeeper/internal/domains/rental/service"
	resourceRepository "slotkeeper/internal/domains/resource/repository"
	resourceService "slotkeeper/internal/domains/resource/service"
	availabilityHandler "slotkeeper/internal/handlers/availability"
	bookingHandler "slotkeeper/internal/handlers/booking"
	calendarHandler "slotkeeper/internal/handlers/calendar"
	rentalHandler "slotkeeper/internal/handlers/rental"
	resourceHandler "slotkeeper/internal/handlers/resource"
	"slotkeeper/internal/jobs"
	"slotkeeper/internal/reservation"
	"slotkeeper/permissions"
	"slotkeeper/shared/cache"
	"slotkeeper/transport/http"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	jwt.New,
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationSet = wire.NewSet(
	reservation.New,
	reservation.NewIdempotency,
	outboxRepository.New,
	outboxService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.NewBusiness,
	resourceRepository.New,
	resourceRepository.NewPolicy,
	resourceRepository.NewWorkingHour,
	resourceRepository.NewException,
	resourceRepository.NewService,
	wire.Struct(new(resourceService.Repositories), "*"),
	resourceService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.NewBusy,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	wire.Struct(new(bookingService.Dependencies), "*"),
	bookingService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalRepository.NewProduct,
	wire.Struct(new(rentalService.Dependencies), "*"),
	rentalService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.NewConnection,
	calendarRepository.NewBusy,
	calendarService.New,
)

var domains = wire.NewSet(
	reservationSet,
	resourceDomain,
	availabilityDomain,
	bookingDomain,
	rentalDomain,
	calendarDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	calendarHandler.New,
	rentalHandler.New,
	resourceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *jobs.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(jobs.Dependencies), "*"),
		jobs.New,
	)

	return &jobs.Worker{}
}
