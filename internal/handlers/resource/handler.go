package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/resource/model/dto"
	"slotkeeper/internal/domains/resource/service"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/validator"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/request"
	"slotkeeper/transport/http/response"
)

type Handler struct {
	service service.Resource
	otel    otel.Otel
}

func New(service service.Resource, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Put("/policy", handler.SetBusinessPolicy)
	router.Get("/resources/{resourceID}", handler.Get)
	router.Put("/resources/{resourceID}/working-hours", handler.SetWorkingHours)
	router.Put("/resources/{resourceID}/exceptions/{date}", handler.SetException)
	router.Delete("/resources/{resourceID}/exceptions/{date}", handler.DeleteException)
	router.Put("/resources/{resourceID}/policy", handler.SetResourcePolicy)
}

// Get returns a resource with its weekly hours and effective policy.
// @Summary Get resource
// @Tags Resource
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResource")
	defer scope.End()

	businessID, resourceID, err := ids(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, businessID, resourceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetWorkingHours replaces the weekly hours of a resource.
// @Summary Set working hours
// @Description Replaces every weekday. Ranges are local wall-clock times in the resource timezone.
// @Tags Resource
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param request body dto.WorkingHoursRequest true "Weekly hours"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/working-hours [put]
// @Security BearerAuth
func (handler *Handler) SetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWorkingHours")
	defer scope.End()

	actor, businessID, resourceID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.WorkingHoursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetWorkingHours(ctx, actor, businessID, resourceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set working hours")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Working hours updated successfully")
}

// SetException closes or re-opens a resource on one date.
// @Summary Set date exception
// @Tags Resource
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param date path string true "Local date (YYYY-MM-DD)"
// @Param request body dto.ExceptionRequest true "Exception"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/exceptions/{date} [put]
// @Security BearerAuth
func (handler *Handler) SetException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetException")
	defer scope.End()

	actor, businessID, resourceID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ExceptionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	date := chi.URLParam(r, constant.RequestParamDate)

	if err := handler.service.SetException(ctx, actor, businessID, resourceID, date, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to set exception")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Exception saved successfully")
}

// DeleteException returns a date to its weekly hours.
// @Summary Delete date exception
// @Tags Resource
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param date path string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/exceptions/{date} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteException(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteException")
	defer scope.End()

	actor, businessID, resourceID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date := chi.URLParam(r, constant.RequestParamDate)

	if err := handler.service.DeleteException(ctx, actor, businessID, resourceID, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to delete exception")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Exception deleted successfully")
}

// SetBusinessPolicy sets the default booking policy of a business.
// @Summary Set business policy
// @Tags Resource
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param request body dto.PolicyRequest true "Policy"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/businesses/{businessID}/policy [put]
// @Security BearerAuth
func (handler *Handler) SetBusinessPolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBusinessPolicy")
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

	req := dto.PolicyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetBusinessPolicy(ctx, actor, businessID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set business policy")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Policy updated successfully")
}

// SetResourcePolicy overrides the business policy for one resource.
// @Summary Set resource policy
// @Tags Resource
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param resourceID path string true "Resource ID"
// @Param request body dto.PolicyRequest true "Policy"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/resources/{resourceID}/policy [put]
// @Security BearerAuth
func (handler *Handler) SetResourcePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetResourcePolicy")
	defer scope.End()

	actor, businessID, resourceID, err := caller(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.PolicyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetResourcePolicy(ctx, actor, businessID, resourceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set resource policy")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Policy updated successfully")
}

func ids(r *http.Request) (businessID, resourceID uuid.UUID, err error) {
	if businessID, err = request.UUIDParam(r, constant.RequestParamBusinessID); err != nil {
		return businessID, resourceID, err
	}

	resourceID, err = request.UUIDParam(r, constant.RequestParamResourceID)

	return businessID, resourceID, err
}

func caller(r *http.Request) (lifecycle.Actor, uuid.UUID, uuid.UUID, error) {
	actor, err := middleware.Actor(r.Context())
	if err != nil {
		return actor, uuid.Nil, uuid.Nil, err
	}

	businessID, resourceID, err := ids(r)

	return actor, businessID, resourceID, err
}
