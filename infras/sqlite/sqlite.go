package sqlite

//nolint:revive
import (
	"fmt"

	"todoapp/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// New opens the SQLite database file. SQLite serialises writers, so the pool
// holds a single connection; this also keeps ":memory:" databases shared.
func New(config *config.Config) *sqlx.DB {
	db, err := Open(config.DB.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.DB.SQLite.Path).Msg("Failed opening sqlite database")
	}

	log.Info().Str("path", config.DB.SQLite.Path).Msg("Connected to database")

	return db
}

func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to configure sqlite database: %w", err)
	}

	return db, nil
}
