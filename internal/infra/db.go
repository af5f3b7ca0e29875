// README: Postgres connection pool initialization and schema migration using pgxpool.
package infra

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate creates the tables this service owns. Statements are idempotent so the
// service can be restarted against the same database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id     TEXT PRIMARY KEY,
			flight_id      TEXT NOT NULL,
			flight_number  TEXT NOT NULL,
			passenger      TEXT NOT NULL,
			departure      TEXT NOT NULL,
			arrival        TEXT NOT NULL,
			travel_date    TEXT NOT NULL,
			price          BIGINT NOT NULL,
			status         TEXT NOT NULL,
			email          TEXT,
			phone          TEXT,
			payment_status TEXT NOT NULL,
			booked_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_booked_at ON bookings (booked_at DESC)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id            TEXT PRIMARY KEY,
			type          TEXT NOT NULL,
			recipient     TEXT NOT NULL,
			booking_id    TEXT,
			flight_number TEXT,
			message       TEXT NOT NULL,
			status        TEXT NOT NULL,
			sent_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_sent_at ON notifications (sent_at DESC)`,
	}
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
