// README: Notification store backed by PostgreSQL.
package notification

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, n *Notification) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO notifications (
            id, type, recipient, booking_id, flight_number, message, status, sent_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID,
		n.Type,
		n.Recipient,
		nullable(n.BookingID),
		nullable(n.FlightNumber),
		n.Message,
		n.Status,
		n.SentAt,
	)
	return err
}

func (s *Store) List(ctx context.Context) ([]Notification, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, recipient, booking_id, flight_number, message, status, sent_at
        FROM notifications
        ORDER BY sent_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Notification{}
	for rows.Next() {
		var n Notification
		var bookingID, flightNumber sql.NullString
		if err := rows.Scan(
			&n.ID, &n.Type, &n.Recipient, &bookingID, &flightNumber,
			&n.Message, &n.Status, &n.SentAt,
		); err != nil {
			return nil, err
		}
		n.BookingID = bookingID.String
		n.FlightNumber = flightNumber.String
		out = append(out, n)
	}
	return out, rows.Err()
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
