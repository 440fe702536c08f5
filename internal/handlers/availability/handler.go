package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/availability/model/dto"
	"slotkeeper/internal/domains/availability/service"
	"slotkeeper/shared/constant"
	"slotkeeper/transport/http/request"
	"slotkeeper/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/resources/{resourceID}/availability", handler.GetAvailability)
	router.Get("/resources/{resourceID}/slots", handler.GetAvailableSlots)
}

// GetAvailability returns the open intervals of a resource.
// @Summary Get resource availability
// @Description Open intervals of the resource inside [from, to) after working hours, exceptions, bookings, external busy time and buffers.
// @Tags Availability
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	businessID, resourceID, err := ids(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.WindowQuery{}
	query.FromRequest(r)

	window, err := query.ToInterval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Resolve(ctx, businessID, resourceID, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailableSlots returns bookable start times for a service.
// @Summary Get available slots
// @Description Candidate slots for the service on the resource, aligned to the slot grid and filtered by booking policy.
// @Tags Availability
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param service_id query string true "Service ID"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/slots [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	businessID, resourceID, err := ids(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	serviceID, err := request.UUIDQuery(r, constant.RequestParamServiceID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.WindowQuery{}
	query.FromRequest(r)

	window, err := query.ToInterval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAvailableSlots(ctx, businessID, resourceID, serviceID, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func ids(r *http.Request) (businessID, resourceID uuid.UUID, err error) {
	if businessID, err = request.UUIDParam(r, constant.RequestParamBusinessID); err != nil {
		return businessID, resourceID, err
	}

	resourceID, err = request.UUIDParam(r, constant.RequestParamResourceID)

	return businessID, resourceID, err
}
