package main

import (
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/di"
	"slotkeeper/helper"
	"slotkeeper/shared/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../../ -o ../../docs

// @title slotkeeper API
// @version 1.0
// @description Availability and booking scheduling engine.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
