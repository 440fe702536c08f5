package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"slotkeeper/infras/otel"
	"slotkeeper/internal/domains/calendar/model/dto"
	"slotkeeper/internal/domains/calendar/service"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/validator"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/request"
	"slotkeeper/transport/http/response"
)

type Handler struct {
	service    service.Calendar
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Calendar, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RequireAPIKey).
		Put("/calendar-connections/{connectionID}/busy", handler.ImportBusy)
}

// ImportBusy replaces the external busy time of a calendar connection inside a window.
// @Summary Import external busy intervals
// @Description Used by the calendar sync service. Busy rows of the connection overlapping [from, to) are replaced by the given intervals.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param connectionID path string true "Calendar connection ID"
// @Param request body dto.ImportBusyRequest true "Busy intervals"
// @Success 200 {object} response.Data[dto.ImportBusyResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/businesses/{businessID}/calendar-connections/{connectionID}/busy [put]
// @Security ApiKeyAuth
func (handler *Handler) ImportBusy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportBusy")
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

	connectionID, err := request.UUIDParam(r, constant.RequestParamConnection)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ImportBusyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ImportBusy(ctx, actor, businessID, connectionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("connection_id", connectionID.String()).Msg("failed to import busy intervals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
