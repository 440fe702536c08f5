package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"slotkeeper/config"
	_ "slotkeeper/docs" // swagger spec
	"slotkeeper/infras/otel"
	"slotkeeper/shared/constant"
	"slotkeeper/transport/http/middleware"
	"slotkeeper/transport/http/response"
	"slotkeeper/transport/http/router"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 5 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	App    middleware.AppMiddleware
	Otel   otel.Otel
	state  atomic.Int32
	mux    *chi.Mux
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		App:    app,
		Otel:   otel,
	}
}

// Serve blocks until SIGINT or SIGTERM, then drains in-flight requests before returning.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()

	h.shutdown(server)
}

// Handler builds the routed handler once; it is also what serverless entrypoints call.
func (h *HTTP) Handler() http.Handler {
	if h.mux == nil {
		h.setupRoutes()
		h.setState(ServerStateReady)
	}

	return otelhttp.NewHandler(h.mux, h.Config.App.Name)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer, h.App.Tracing)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.Router.SetupRoutes(h.mux)
}

// health reports 503 from the moment shutdown starts so load balancers stop routing here.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) shutdown(server *http.Server) {
	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		_ = server.Close()

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
