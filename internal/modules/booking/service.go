// README: Booking service creates and retrieves flight bookings.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"skybot/internal/types"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrBadRequest = errors.New("bad request")
)

// Notifier delivers the booking confirmation. Delivery failures are
// logged and never fail the booking itself.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *Booking) error
}

type Service struct {
	store    *Store
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(store *Store, notifier Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type CreateCommand struct {
	FlightID      string `json:"flightId"`
	PassengerName string `json:"passengerName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	Date          string `json:"date"`
	FlightNumber  string `json:"flightNumber"`
	Price         int64  `json:"price"`
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.FlightID == "" || cmd.PassengerName == "" {
		return nil, ErrBadRequest
	}

	now := s.now()
	b := &Booking{
		BookingID:     newBookingID(),
		FlightID:      cmd.FlightID,
		FlightNumber:  cmd.FlightNumber,
		Passenger:     cmd.PassengerName,
		Departure:     cmd.Departure,
		Arrival:       cmd.Arrival,
		Date:          cmd.Date,
		Price:         cmd.Price,
		Status:        "Confirmed",
		Email:         cmd.Email,
		Phone:         cmd.Phone,
		BookingDate:   now,
		PaymentStatus: "Completed",
	}
	s.fillDefaults(b, now)

	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}

	if b.Email != "" && s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, b); err != nil {
			s.log.Warn("booking confirmation not delivered",
				"booking_id", b.BookingID, "error", err)
		}
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, bookingID types.ID) (*Booking, error) {
	return s.store.Get(ctx, bookingID)
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.store.List(ctx)
}

// fillDefaults substitutes placeholder values for fields the caller
// left empty, so a bare flightId+passengerName request still books.
func (s *Service) fillDefaults(b *Booking, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.FlightNumber == "" {
		b.FlightNumber = "6E" + strconv.Itoa(s.rng.Intn(9000)+1000)
	}
	if b.Departure == "" {
		b.Departure = "Unknown"
	}
	if b.Arrival == "" {
		b.Arrival = "Unknown"
	}
	if b.Date == "" {
		b.Date = now.Format("2006-01-02")
	}
	if b.Price == 0 {
		b.Price = int64(s.rng.Intn(5000) + 3000)
	}
}

func newBookingID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(raw[:8])
}
