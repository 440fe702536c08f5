package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"slotkeeper/config"
)

const migrationsSource = "file://migrations/postgres"

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// ConnectionString points golang-migrate at the write pool, keeping its bookkeeping in MigrationTable.
func ConnectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(write.Username, write.Password),
		Host:   net.JoinHostPort(write.Host, write.Port),
		Path:   getDBName(config, write.Name),
	}

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, ConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action Action) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

// Force marks version as clean after a failed migration was repaired by hand.
func Force(config *config.Config, version int) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := mig.Force(version); err != nil {
		return fmt.Errorf("error forcing schema version %d: %w", version, err)
	}

	return nil
}
