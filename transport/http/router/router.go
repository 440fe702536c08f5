package router

import (
	"github.com/go-chi/chi/v5"

	"slotkeeper/internal/handlers/availability"
	"slotkeeper/internal/handlers/booking"
	"slotkeeper/internal/handlers/calendar"
	"slotkeeper/internal/handlers/rental"
	"slotkeeper/internal/handlers/resource"
	"slotkeeper/transport/http/middleware"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Calendar     calendar.Handler
	Rental       rental.Handler
	Resource     resource.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
}

// SetupRoutes mounts every tenant scoped route under /v1/businesses/{businessID}.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit(), r.Auth.APIKey, r.Auth.Auth, r.Auth.RBAC)

		routerGroup.Route("/businesses/{businessID}", func(business chi.Router) {
			r.DomainHandlers.Resource.Router(business)
			r.DomainHandlers.Availability.Router(business)
			r.DomainHandlers.Booking.Router(business)
			r.DomainHandlers.Rental.Router(business)
			r.DomainHandlers.Calendar.Router(business)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
