package calendar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"slotkeeper/config"
	"slotkeeper/infras/jwt"
	otelMocks "slotkeeper/infras/otel/mocks"
	"slotkeeper/internal/domains/calendar/model/dto"
	"slotkeeper/internal/domains/calendar/service/mocks"
	"slotkeeper/internal/handlers/calendar"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/permissions"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/transport/http/middleware"
)

func TestHandler_ImportBusy(t *testing.T) {
	businessID := uuid.New()
	connectionID := uuid.New()
	path := "/v1/businesses/" + businessID.String() + "/calendar-connections/" + connectionID.String() + "/busy"
	body := `{"from":"2026-11-02T00:00:00Z","to":"2026-11-09T00:00:00Z","intervals":[{"external_id":"evt-1","start":"2026-11-03T10:00:00Z","end":"2026-11-03T11:00:00Z"}]}`

	cfg := &config.Config{}
	cfg.App.Name = "slotkeeper"
	cfg.App.APIKey = "sync-key"

	tests := []struct {
		name     string
		apiKey   string
		body     string
		setup    func(svc *mocks.MockCalendar)
		wantCode int
	}{
		{
			name:   "imported",
			apiKey: "sync-key",
			body:   body,
			setup: func(svc *mocks.MockCalendar) {
				svc.EXPECT().ImportBusy(gomock.Any(), lifecycle.System, businessID, connectionID, gomock.Any()).
					DoAndReturn(func(_, _, _, _ any, req dto.ImportBusyRequest) (dto.ImportBusyResponse, error) {
						assert.Len(t, req.Intervals, 1)

						return dto.ImportBusyResponse{ConnectionID: connectionID, Imported: 1}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "unknown connection",
			apiKey: "sync-key",
			body:   body,
			setup: func(svc *mocks.MockCalendar) {
				svc.EXPECT().ImportBusy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.ImportBusyResponse{}, failure.Wrap(failure.ErrResourceNotFound, "calendar connection"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "end before start",
			apiKey:   "sync-key",
			body:     `{"from":"2026-11-09T00:00:00Z","to":"2026-11-02T00:00:00Z","intervals":[]}`,
			setup:    func(_ *mocks.MockCalendar) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no api key",
			body:     body,
			setup:    func(_ *mocks.MockCalendar) {},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCalendar(ctrl)
			tt.setup(svc)

			auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), otelMocks.NewOtel(), permissions.Get(), cfg)
			handler := calendar.New(svc, auth, otelMocks.NewOtel())

			router := chi.NewRouter()
			router.Use(auth.APIKey)
			router.Route("/v1/businesses/{businessID}", handler.Router)

			request := httptest.NewRequest(http.MethodPut, path, strings.NewReader(tt.body))
			if tt.apiKey != "" {
				request.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
