package handler

import (
	"net/http"
	"sync"

	"slotkeeper/config"
	"slotkeeper/di"
	"slotkeeper/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The routed handler is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
