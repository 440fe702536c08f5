package rental

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/infras/otel"
	availabilityDto "slotkeeper/internal/domains/availability/model/dto"
	"slotkeeper/internal/domains/rental/model/dto"
	"slotkeeper/internal/domains/rental/service"
	"slotkeeper/shared"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/validator"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/request"
	"slotkeeper/transport/http/response"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/products/{productID}/capacity", handler.GetCapacity)
	router.Post("/rentals", handler.Reserve)
	router.Get("/rentals/{rentalID}", handler.Get)
	router.Post("/rentals/{rentalID}/status", handler.Transition)
}

// GetCapacity returns how many units of a product are free for the whole window.
// @Summary Get rental capacity
// @Tags Rental
// @Produce json
// @Param businessID path string true "Business ID"
// @Param productID path string true "Product ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Param timeline query bool false "Include the per-segment breakdown"
// @Success 200 {object} response.Data[dto.CapacityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/products/{productID}/capacity [get]
// @Security BearerAuth
func (handler *Handler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalCapacity")
	defer scope.End()

	businessID, err := request.UUIDParam(r, constant.RequestParamBusinessID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	productID, err := request.UUIDParam(r, constant.RequestParamProductID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := availabilityDto.WindowQuery{}
	query.FromRequest(r)

	window, err := query.ToInterval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	timeline := false

	if raw := r.URL.Query().Get(constant.RequestParamTimeline); raw != "" {
		value := shared.ConvertStringToBool(raw)
		if value == nil {
			err := shared.InvalidParam(constant.RequestParamTimeline, raw)
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		timeline = *value
	}

	res, err := handler.service.GetRentalCapacity(ctx, businessID, productID, window, timeline)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental capacity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Reserve takes units of a product for an interval.
// @Summary Reserve rental
// @Tags Rental
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body dto.ReserveRentalRequest true "Rental request"
// @Success 201 {object} response.Data[dto.RentalResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Capacity exceeded"
// @Failure 503 {object} response.Error "Contended, retry after the Retry-After header"
// @Router /v1/businesses/{businessID}/rentals [post]
// @Security BearerAuth
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReserveRental")
	defer scope.End()

	actor, err := middleware.Actor(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	businessID, err := request.UUIDParam(r, constant.RequestParamBusinessID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ReserveRentalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReserveRental(ctx, actor, businessID, req, request.IdempotencyKey(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve rental")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Get returns one rental.
// @Summary Get rental
// @Tags Rental
// @Produce json
// @Param businessID path string true "Business ID"
// @Param rentalID path string true "Rental ID"
// @Success 200 {object} response.Data[dto.RentalResponse]
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/rentals/{rentalID} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRental")
	defer scope.End()

	actor, err := middleware.Actor(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	businessID, rentalID, err := ids(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetRental(ctx, actor, businessID, rentalID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Transition moves a rental through its lifecycle.
// @Summary Change rental status
// @Description Customers may only cancel. Staff drive deposits, check-out and returns.
// @Tags Rental
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param rentalID path string true "Rental ID"
// @Param request body dto.TransitionRequest true "Transition request"
// @Success 200 {object} response.Data[dto.RentalResponse]
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition"
// @Failure 503 {object} response.Error "Changed concurrently, retry"
// @Router /v1/businesses/{businessID}/rentals/{rentalID}/status [post]
// @Security BearerAuth
func (handler *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionRental")
	defer scope.End()

	actor, err := middleware.Actor(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	businessID, rentalID, err := ids(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.TransitionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.TransitionRental(ctx, actor, businessID, rentalID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("rental_id", rentalID.String()).Msg("failed to transition rental")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func ids(r *http.Request) (businessID, rentalID uuid.UUID, err error) {
	if businessID, err = request.UUIDParam(r, constant.RequestParamBusinessID); err != nil {
		return businessID, rentalID, err
	}

	rentalID, err = request.UUIDParam(r, constant.RequestParamRentalID)

	return businessID, rentalID, err
}
