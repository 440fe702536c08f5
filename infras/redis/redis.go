package redis

import (
	"context"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
)

const pingTimeout = 5 * time.Second

func New(config *config.Config) *goRedis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(config.Cache.Redis.Primary.Host, config.Cache.Redis.Primary.Port),
		Password: config.Cache.Redis.Primary.Password,
		DB:       config.Cache.Redis.Primary.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("host", config.Cache.Redis.Primary.Host).
		Str("port", config.Cache.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}
