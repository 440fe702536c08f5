package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"slotkeeper/config"
	"slotkeeper/helper"
	"slotkeeper/shared/logger"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/drop/step-up/force) is required")
	}

	switch action := helper.Action(os.Args[1]); action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case "force":
		if len(os.Args) <= argLength {
			log.Fatal().Msg("force needs a version")
		}

		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid version")
		}

		if err := helper.Force(cfg, version); err != nil {
			log.Fatal().Err(err).Msg("Force failed")
		}
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'force <version>'")
	}
}
