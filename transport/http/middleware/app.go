package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"slotkeeper/config"
	"slotkeeper/infras/otel"
	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens an application span per request and records the matched route once routing is done.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", request.Method, request.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		ww := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(ww, request.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(request.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", ww.Status()))
		}
	})
}
