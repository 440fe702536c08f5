package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/config"
	"slotkeeper/infras/jwt"
	otelMocks "slotkeeper/infras/otel/mocks"
	"slotkeeper/internal/scheduling/lifecycle"
	"slotkeeper/permissions"
	"slotkeeper/shared/constant"
	"slotkeeper/transport/http/middleware"
)

const (
	confirmPath = "/v1/businesses/6c1e3a4d-0f0e-4b8e-9f5c-1f2a3b4c5d6e/bookings/0e7d1f9a-2c3b-4d5e-8f90-a1b2c3d4e5f6/confirm"
	busyPath    = "/v1/businesses/6c1e3a4d-0f0e-4b8e-9f5c-1f2a3b4c5d6e/calendar-connections/9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d/busy"
)

func newRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), otelMocks.NewOtel(), permissions.Get(), cfg)

	echoActor := func(writer http.ResponseWriter, request *http.Request) {
		actor, err := middleware.Actor(request.Context())
		if err != nil {
			writer.WriteHeader(http.StatusUnauthorized)

			return
		}

		_, _ = writer.Write([]byte(actor.Role))
	}

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Post("/v1/businesses/{businessID}/bookings/{bookingID}/confirm", echoActor)
	router.With(auth.RequireAPIKey).Put("/v1/businesses/{businessID}/calendar-connections/{connectionID}/busy", echoActor)

	return router
}

func TestAuthRole(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "slotkeeper"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 5

	issuer := jwt.New(cfg)
	bearer := func(role string) string {
		token, err := issuer.GenerateToken(uuid.NewString(), "", role)
		require.NoError(t, err)

		return "Bearer " + token
	}

	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "missing token",
			method:   http.MethodPost,
			path:     confirmPath,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			method:   http.MethodPost,
			path:     confirmPath,
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer nope"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "customer cannot confirm",
			method:   http.MethodPost,
			path:     confirmPath,
			headers:  map[string]string{constant.RequestHeaderAuthorization: bearer(constant.RoleCustomer)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "staff confirms",
			method:   http.MethodPost,
			path:     confirmPath,
			headers:  map[string]string{constant.RequestHeaderAuthorization: bearer(constant.RoleStaff)},
			wantCode: http.StatusOK,
			wantBody: constant.RoleStaff,
		},
		{
			name:     "api key acts as system",
			method:   http.MethodPut,
			path:     busyPath,
			headers:  map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
			wantBody: lifecycle.System.Role,
		},
		{
			name:     "wrong api key",
			method:   http.MethodPut,
			path:     busyPath,
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "users cannot import busy time",
			method:   http.MethodPut,
			path:     busyPath,
			headers:  map[string]string{constant.RequestHeaderAuthorization: bearer(constant.RoleSuperAdmin)},
			wantCode: http.StatusForbidden,
		},
	}

	router := newRouter(t, cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestActor(t *testing.T) {
	_, err := middleware.Actor(context.Background())
	assert.Error(t, err)

	want := lifecycle.Actor{ID: uuid.New(), Role: constant.RoleManager}

	got, err := middleware.Actor(middleware.WithActor(context.Background(), want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
