package resource_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "slotkeeper/infras/otel/mocks"
	"slotkeeper/internal/domains/resource/model/dto"
	"slotkeeper/internal/domains/resource/service/mocks"
	"slotkeeper/internal/handlers/resource"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/transport/http/middleware"
)

var (
	businessID = uuid.MustParse("6c1e3a4d-0f0e-4b8e-9f5c-1f2a3b4c5d6e")
	resourceID = uuid.MustParse("9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d")
	manager    = lifecycle.Actor{ID: uuid.MustParse("2b9c4d1e-7a6f-4e3d-9c8b-1a0f2e3d4c5b"), Role: constant.RoleManager}
)

func newServer(svc *mocks.MockResource) http.Handler {
	handler := resource.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithActor(r.Context(), manager)))
		})
	})
	router.Route("/v1/businesses/{businessID}", handler.Router)

	return router
}

func TestHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockResource(ctrl)

	svc.EXPECT().Get(gomock.Any(), businessID, resourceID).
		Return(dto.ResourceResponse{}, failure.Wrap(failure.ErrResourceNotFound, "resource %s", resourceID))

	rec := httptest.NewRecorder()
	newServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/businesses/"+businessID.String()+"/resources/"+resourceID.String(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ScheduleWrites(t *testing.T) {
	base := "/v1/businesses/" + businessID.String() + "/resources/" + resourceID.String()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(svc *mocks.MockResource)
		wantCode int
	}{
		{
			name:   "working hours",
			method: http.MethodPut,
			path:   base + "/working-hours",
			body:   `{"days":[{"weekday":1,"ranges":[{"start":"09:00","end":"12:00"}]}]}`,
			setup: func(svc *mocks.MockResource) {
				svc.EXPECT().SetWorkingHours(gomock.Any(), manager, businessID, resourceID, gomock.Any()).
					DoAndReturn(func(_, _, _, _ any, req dto.WorkingHoursRequest) error {
						assert.Len(t, req.Days, 1)

						return nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "working hours with a bad clock",
			method:   http.MethodPut,
			path:     base + "/working-hours",
			body:     `{"days":[{"weekday":1,"ranges":[{"start":"9am","end":"12:00"}]}]}`,
			setup:    func(_ *mocks.MockResource) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "closed date",
			method: http.MethodPut,
			path:   base + "/exceptions/2026-12-25",
			body:   `{"closed":true}`,
			setup: func(svc *mocks.MockResource) {
				svc.EXPECT().SetException(gomock.Any(), manager, businessID, resourceID, "2026-12-25", dto.ExceptionRequest{Closed: true}).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "delete exception",
			method: http.MethodDelete,
			path:   base + "/exceptions/2026-12-25",
			setup: func(svc *mocks.MockResource) {
				svc.EXPECT().DeleteException(gomock.Any(), manager, businessID, resourceID, "2026-12-25").
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "resource policy",
			method: http.MethodPut,
			path:   base + "/policy",
			body:   `{"buffer_minutes":15,"granularity_minutes":30,"use_fixed_intervals":true}`,
			setup: func(svc *mocks.MockResource) {
				svc.EXPECT().SetResourcePolicy(gomock.Any(), manager, businessID, resourceID,
					dto.PolicyRequest{BufferMinutes: 15, GranularityMinutes: 30, UseFixedIntervals: true}).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "negative buffer",
			method:   http.MethodPut,
			path:     "/v1/businesses/" + businessID.String() + "/policy",
			body:     `{"buffer_minutes":-5}`,
			setup:    func(_ *mocks.MockResource) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "business policy",
			method: http.MethodPut,
			path:   "/v1/businesses/" + businessID.String() + "/policy",
			body:   `{"cancellation_window_minutes":1440,"auto_confirm":true}`,
			setup: func(svc *mocks.MockResource) {
				svc.EXPECT().SetBusinessPolicy(gomock.Any(), manager, businessID,
					dto.PolicyRequest{CancellationWindowMinutes: 1440, AutoConfirm: true}).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockResource(ctrl)
			tt.setup(svc)

			var request *http.Request
			if tt.body == "" {
				request = httptest.NewRequest(tt.method, tt.path, nil)
			} else {
				request = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			}

			rec := httptest.NewRecorder()
			newServer(svc).ServeHTTP(rec, request)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
