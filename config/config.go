package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"slotkeeper"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"3600"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
		Issuer          string `envconfig:"ISSUER"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE" default:"UTC"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE" default:"UTC"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Scheduling struct {
		MaxRangeDays       int `envconfig:"MAX_RANGE_DAYS" default:"366"`
		DisplayStepMinutes int `envconfig:"DISPLAY_STEP_MINUTES" default:"15"`
	} `envconfig:"SCHEDULING"`

	Reservation struct {
		LockBucketMinutes       int `envconfig:"LOCK_BUCKET_MINUTES" default:"60"`
		RentalLockBucketMinutes int `envconfig:"RENTAL_LOCK_BUCKET_MINUTES" default:"1440"`
		LockTimeoutMs           int `envconfig:"LOCK_TIMEOUT_MS" default:"2000"`
		CommitTimeoutMs         int `envconfig:"COMMIT_TIMEOUT_MS" default:"5000"`
		IdempotencyTTLHours     int `envconfig:"IDEMPOTENCY_TTL_HOURS" default:"24"`
	} `envconfig:"RESERVATION"`

	Jobs struct {
		LifecycleIntervalSeconds int `envconfig:"LIFECYCLE_INTERVAL_SECONDS" default:"60"`
		CompletionGraceMinutes   int `envconfig:"COMPLETION_GRACE_MINUTES" default:"30"`
		OutboxIntervalSeconds    int `envconfig:"OUTBOX_INTERVAL_SECONDS" default:"2"`
		OutboxBatchSize          int `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
		OutboxLeaseSeconds       int `envconfig:"OUTBOX_LEASE_SECONDS" default:"30"`
		BatchSize                int `envconfig:"BATCH_SIZE" default:"500"`
	} `envconfig:"JOBS"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"slotkeeper"`
		ClientID      string   `envconfig:"CLIENT_ID" default:"slotkeeper"`
		SASL          struct {
			Enable   bool   `envconfig:"ENABLE"`
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			Reservations string `envconfig:"RESERVATIONS" default:"reservations.events"`
			CalendarBusy string `envconfig:"CALENDAR_BUSY" default:"calendar.busy"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
