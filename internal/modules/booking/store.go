// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skybot/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO bookings (
            booking_id, flight_id, flight_number, passenger,
            departure, arrival, travel_date, price, status,
            email, phone, payment_status, booked_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8, $9,
            $10, $11, $12, $13
        )`,
		b.BookingID,
		b.FlightID,
		b.FlightNumber,
		b.Passenger,
		b.Departure,
		b.Arrival,
		b.Date,
		b.Price,
		b.Status,
		nullable(b.Email),
		nullable(b.Phone),
		b.PaymentStatus,
		b.BookingDate,
	)
	return err
}

func (s *Store) Get(ctx context.Context, bookingID types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT booking_id, flight_id, flight_number, passenger,
               departure, arrival, travel_date, price, status,
               email, phone, payment_status, booked_at
        FROM bookings
        WHERE booking_id = $1`, bookingID.String(),
	)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) List(ctx context.Context) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
        SELECT booking_id, flight_id, flight_number, passenger,
               departure, arrival, travel_date, price, status,
               email, phone, payment_status, booked_at
        FROM bookings
        ORDER BY booked_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var email, phone sql.NullString
	err := row.Scan(
		&b.BookingID, &b.FlightID, &b.FlightNumber, &b.Passenger,
		&b.Departure, &b.Arrival, &b.Date, &b.Price, &b.Status,
		&email, &phone, &b.PaymentStatus, &b.BookingDate,
	)
	if err != nil {
		return nil, err
	}
	b.Email = email.String
	b.Phone = phone.String
	return &b, nil
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
