package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"todoapp/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// getDBName returns the database name with prefix if configured
func getDBName(config *config.Config) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + config.DB.Postgres.Name
	}

	return config.DB.Postgres.Name
}

// DSN returns the lib/pq connection string for the configured database.
func DSN(config *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		net.JoinHostPort(config.DB.Postgres.Host, config.DB.Postgres.Port),
		getDBName(config),
		config.DB.Postgres.SSLMode,
	)
}

// New connects to Postgres, retrying up to DB_POSTGRES_MAX_RETRY times. It
// returns nil when every attempt fails.
func New(config *config.Config) *sqlx.DB {
	host := config.DB.Postgres.Host
	port := config.DB.Postgres.Port
	dbName := getDBName(config)
	maxRetry := max(config.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", DSN(config))
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
