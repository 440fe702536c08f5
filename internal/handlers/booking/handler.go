package booking

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/booking/model/dto"
	"slotkeeper/internal/domains/booking/service"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/validator"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/request"
	"slotkeeper/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.Reserve)
	router.Get("/bookings", handler.List)
	router.Get("/bookings/{bookingID}", handler.Get)
	router.Post("/bookings/{bookingID}/confirm", handler.Confirm)
	router.Post("/bookings/{bookingID}/complete", handler.Complete)
	router.Post("/bookings/{bookingID}/no-show", handler.MarkNoShow)
	router.Post("/bookings/{bookingID}/cancel", handler.Cancel)
	router.Post("/bookings/{bookingID}/reschedule", handler.Reschedule)
}

// Reserve books a service on a resource.
// @Summary Reserve a booking
// @Description Books the slot starting at start. A retried request with the same Idempotency-Key returns the original booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body dto.ReserveRequest true "Reserve request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slot no longer available"
// @Failure 422 {object} response.Error "Policy violation"
// @Failure 503 {object} response.Error "Contended, retry after the Retry-After header"
// @Router /v1/businesses/{businessID}/bookings [post]
// @Security BearerAuth
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	actor, businessID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ReserveRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, actor, businessID, req, request.IdempotencyKey(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking reserved by " + actor.String())

	response.WithJSON(w, http.StatusCreated, res)
}

// List returns the bookings of a business. Customers only see their own.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param businessID path string true "Business ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sort_by query string false "start_at, end_at, status or created_at"
// @Param sort_dir query string false "asc or desc"
// @Param resource_id query string false "Filter by resource"
// @Param customer_id query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Param from query string false "Bookings starting at or after (RFC3339)"
// @Param to query string false "Bookings starting before (RFC3339)"
// @Success 200 {object} response.Data[dto.BookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/businesses/{businessID}/bookings [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	actor, businessID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.ListQuery{}
	if err := query.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, actor, businessID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one booking.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/bookings/{bookingID} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	handler.handle(w, r, "GetBooking", handler.service.Get)
}

// Confirm moves a pending booking to confirmed.
// @Summary Confirm booking
// @Tags Booking
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 409 {object} response.Error "Invalid transition"
// @Router /v1/businesses/{businessID}/bookings/{bookingID}/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	handler.handle(w, r, "ConfirmBooking", handler.service.Confirm)
}

// Complete marks a confirmed booking as completed.
// @Summary Complete booking
// @Tags Booking
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 409 {object} response.Error "Invalid transition"
// @Router /v1/businesses/{businessID}/bookings/{bookingID}/complete [post]
// @Security BearerAuth
func (handler *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	handler.handle(w, r, "CompleteBooking", handler.service.Complete)
}

// MarkNoShow records that the customer did not turn up.
// @Summary Mark booking as no-show
// @Tags Booking
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 409 {object} response.Error "Invalid transition"
// @Router /v1/businesses/{businessID}/bookings/{bookingID}/no-show [post]
// @Security BearerAuth
func (handler *Handler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	handler.handle(w, r, "MarkNoShow", handler.service.MarkNoShow)
}

// Cancel cancels a booking and frees its slot.
// @Summary Cancel booking
// @Description Customers must cancel before the policy's cancellation window; staff may override.
// @Tags Booking
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Param request body dto.CancelRequest false "Cancel request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 409 {object} response.Error "Invalid transition"
// @Failure 422 {object} response.Error "Inside the cancellation window"
// @Router /v1/businesses/{businessID}/bookings/{bookingID}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	req := dto.CancelRequest{}

	if request.HasBody(r) {
		if err := validator.Validate(r.Body, &req); err != nil {
			log.Error().Err(err).Msg("failed to validate request body")
			response.WithError(w, err)

			return
		}
	}

	handler.handle(w, r, "CancelBooking", func(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error) {
		return handler.service.Cancel(ctx, actor, businessID, bookingID, req)
	})
}

// Reschedule moves a booking to a new interval atomically.
// @Summary Reschedule booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bookingID path string true "Booking ID"
// @Param request body dto.RescheduleRequest true "Reschedule request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 409 {object} response.Error "Slot no longer available"
// @Failure 422 {object} response.Error "Policy violation"
// @Failure 503 {object} response.Error "Contended, retry after the Retry-After header"
// @Router /v1/businesses/{businessID}/bookings/{bookingID}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	req := dto.RescheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	handler.handle(w, r, "RescheduleBooking", func(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error) {
		return handler.service.Reschedule(ctx, actor, businessID, bookingID, req)
	})
}

type bookingFunc func(ctx context.Context, actor lifecycle.Actor, businessID, bookingID uuid.UUID) (dto.BookingResponse, error)

// handle runs an operation addressed to a single booking.
func (handler *Handler) handle(w http.ResponseWriter, r *http.Request, name string, fn bookingFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	actor, businessID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookingID, err := request.UUIDParam(r, constant.RequestParamBookingID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := fn(ctx, actor, businessID, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID.String()).Msgf("failed to %s", name)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func caller(r *http.Request) (lifecycle.Actor, uuid.UUID, error) {
	actor, err := middleware.Actor(r.Context())
	if err != nil {
		return actor, uuid.Nil, err
	}

	businessID, err := request.UUIDParam(r, constant.RequestParamBusinessID)

	return actor, businessID, err
}
