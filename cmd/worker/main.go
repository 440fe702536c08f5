package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/di"
	"slotkeeper/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	log.Info().Msg("Starting worker.")

	if err := worker.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Worker stopped with error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := worker.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close worker")
	}

	log.Info().Msg("Worker stopped.")
}
