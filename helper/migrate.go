package helper

//nolint:revive
import (
	"database/sql"
	"errors"
	"fmt"

	"todoapp/config"
	"todoapp/infras/postgres"
	"todoapp/infras/sqlite"
	"todoapp/migrations"
	"todoapp/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migrateSQLite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var errUnsupportedDriver = errors.New("store driver has no sql migrations")

// NewMigrate builds a migrate instance over an open database handle using the
// embedded schema for driver.
func NewMigrate(db *sql.DB, driver, migrationTable string) (*migrate.Migrate, error) {
	var (
		dir      string
		instance database.Driver
		err      error
	)

	switch driver {
	case constant.StoreDriverPostgres:
		dir = migrations.PostgresDir
		instance, err = migratePostgres.WithInstance(db, &migratePostgres.Config{MigrationsTable: migrationTable})
	case constant.StoreDriverSQLite:
		dir = migrations.SQLiteDir
		instance, err = migrateSQLite.WithInstance(db, &migrateSQLite.Config{MigrationsTable: migrationTable})
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedDriver, driver)
	}

	if err != nil {
		return nil, fmt.Errorf("error creating database driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func getConnection(config *config.Config) (*sql.DB, string, error) {
	switch config.Store.Driver {
	case constant.StoreDriverPostgres:
		db := postgres.New(config)
		if db == nil {
			return nil, "", errors.New("could not connect to postgres")
		}

		return db.DB, config.DB.Postgres.MigrationTable, nil
	case constant.StoreDriverSQLite:
		db, err := sqlite.Open(config.DB.SQLite.Path)
		if err != nil {
			return nil, "", fmt.Errorf("could not open sqlite: %w", err)
		}

		return db.DB, config.DB.SQLite.MigrationTable, nil
	}

	return nil, "", fmt.Errorf("%w: %s", errUnsupportedDriver, config.Store.Driver)
}

func Runner(config *config.Config, action string) error {
	db, migrationTable, err := getConnection(config)
	if err != nil {
		return err
	}

	defer db.Close()

	return RunnerWithDB(db, config.Store.Driver, migrationTable, action)
}

// RunnerWithDB applies action on an already open database. The handle stays
// open for the caller.
func RunnerWithDB(db *sql.DB, driver, migrationTable, action string) error {
	mig, err := NewMigrate(db, driver, migrationTable)
	if err != nil {
		return err
	}

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("driver", driver).Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("driver", driver).Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
