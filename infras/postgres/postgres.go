package postgres

import (
	"fmt"
	"net"
	"time"

	"fuego/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	DB *sqlx.DB
}

// New dials the remote reservation store. Unlike a conventional service the
// process must come up even when the database is unreachable or misconfigured:
// the reservation layer degrades to the on-device fallback store, so after the
// configured retries we keep a lazy handle and let individual queries fail.
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
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to remote reservation store")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return &Connection{DB: sqlDB}
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to remote store, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	sqlDB, err := sqlx.Open("postgres", descriptor)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid remote store descriptor")
	}

	sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
	sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

	log.
		Warn().
		Str("host", pg.Host).
		Str("port", pg.Port).
		Msg("Remote store unreachable, starting in degraded mode; local fallback will serve reservations")

	return &Connection{DB: sqlDB}
}
