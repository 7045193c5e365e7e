package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"phoenix/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection wraps the session database. The gateway's Postgres footprint is
// deliberately small: only the session snapshot table lives here; every
// booking-domain record is owned by the backend.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)

	for retry := range pg.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to session database")

			sqlDB.SetMaxIdleConns(maxIdleConnections)
			sqlDB.SetMaxOpenConns(maxOpenConnections)

			return &Connection{DB: sqlDB}
		}

		log.Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Int("attempt", retry+1).
			Msg("Failed connecting to session database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Msg("Exhausted retries connecting to session database")

	return nil
}
