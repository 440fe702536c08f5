package rental_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "slotkeeper/infras/otel/mocks"
	"slotkeeper/internal/domains/rental/model/dto"
	"slotkeeper/internal/domains/rental/service/mocks"
	"slotkeeper/internal/handlers/rental"
	"slotkeeper/internal/scheduling/interval"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
	"slotkeeper/transport/http/middleware"
)

var (
	businessID = uuid.MustParse("6c1e3a4d-0f0e-4b8e-9f5c-1f2a3b4c5d6e")
	productID  = uuid.MustParse("3c2b1a09-8f7e-4d6c-9b5a-493827160504")
	rentalID   = uuid.MustParse("5e4d3c2b-1a09-4f8e-8d7c-6b5a49382716")
	staff      = lifecycle.Actor{ID: uuid.MustParse("2b9c4d1e-7a6f-4e3d-9c8b-1a0f2e3d4c5b"), Role: constant.RoleStaff}
)

func newServer(svc *mocks.MockRental) http.Handler {
	handler := rental.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithActor(r.Context(), staff)))
		})
	})
	router.Route("/v1/businesses/{businessID}", handler.Router)

	return router
}

func TestHandler_GetCapacity(t *testing.T) {
	from := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	window, _ := interval.New(from, from.Add(48*time.Hour))
	base := "/v1/businesses/" + businessID.String() + "/products/" + productID.String() + "/capacity?from=2026-11-02T00:00:00Z&to=2026-11-04T00:00:00Z"

	tests := []struct {
		name     string
		url      string
		setup    func(svc *mocks.MockRental)
		wantCode int
	}{
		{
			name: "without timeline",
			url:  base,
			setup: func(svc *mocks.MockRental) {
				svc.EXPECT().GetRentalCapacity(gomock.Any(), businessID, productID, window, false).
					Return(dto.CapacityResponse{ProductID: productID, Total: 5, Remaining: 2}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "with timeline",
			url:  base + "&timeline=true",
			setup: func(svc *mocks.MockRental) {
				svc.EXPECT().GetRentalCapacity(gomock.Any(), businessID, productID, window, true).
					Return(dto.CapacityResponse{ProductID: productID, Total: 5, Remaining: 2}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad timeline flag",
			url:      base + "&timeline=maybe",
			setup:    func(_ *mocks.MockRental) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "inverted window",
			url:      "/v1/businesses/" + businessID.String() + "/products/" + productID.String() + "/capacity?from=2026-11-04T00:00:00Z&to=2026-11-02T00:00:00Z",
			setup:    func(_ *mocks.MockRental) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "range too large",
			url:  base,
			setup: func(svc *mocks.MockRental) {
				svc.EXPECT().GetRentalCapacity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return(dto.CapacityResponse{}, failure.Wrap(failure.ErrRangeTooLarge, "max 31 days"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockRental(ctrl)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRental(ctrl)

	svc.EXPECT().ReserveRental(gomock.Any(), staff, businessID, gomock.Any(), "key-7").
		Return(dto.RentalResponse{}, failure.Wrap(failure.ErrCapacityExceeded, "2 requested, 1 left"))

	body := `{"product_id":"` + productID.String() + `","customer_id":"` + uuid.NewString() + `","start":"2026-11-02T09:00:00Z","end":"2026-11-03T09:00:00Z","quantity":2}`
	request := httptest.NewRequest(http.MethodPost, "/v1/businesses/"+businessID.String()+"/rentals", strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderIdempotencyKey, "key-7")

	rec := httptest.NewRecorder()
	newServer(svc).ServeHTTP(rec, request)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Transition(t *testing.T) {
	path := "/v1/businesses/" + businessID.String() + "/rentals/" + rentalID.String() + "/status"

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockRental)
		wantCode   int
		retryAfter string
	}{
		{
			name: "checked out",
			body: `{"status":"checked_out"}`,
			setup: func(svc *mocks.MockRental) {
				svc.EXPECT().TransitionRental(gomock.Any(), staff, businessID, rentalID, dto.TransitionRequest{Status: lifecycle.RentalCheckedOut}).
					Return(dto.RentalResponse{ID: rentalID, Status: lifecycle.RentalCheckedOut}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "lost update",
			body: `{"status":"returned"}`,
			setup: func(svc *mocks.MockRental) {
				svc.EXPECT().TransitionRental(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.RentalResponse{}, failure.Wrap(failure.ErrReservationContended, "rental changed concurrently"))
			},
			wantCode:   http.StatusServiceUnavailable,
			retryAfter: "1",
		},
		{
			name:     "missing status",
			body:     `{"reason":"x"}`,
			setup:    func(_ *mocks.MockRental) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockRental(ctrl)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.retryAfter, rec.Header().Get(constant.ResponseHeaderRetryAfter))
		})
	}
}
