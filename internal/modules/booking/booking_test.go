// README: Booking service tests (defaults, validation, DB-backed flow).
package booking

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"skybot/internal/infra"
	"skybot/internal/types"
)

func newTestService(store *Store, notifier Notifier) *Service {
	s := NewService(store, notifier, nil)
	s.now = func() time.Time { return time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC) }
	s.rng = rand.New(rand.NewSource(1))
	return s
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(nil, nil)
	cases := []CreateCommand{
		{},
		{FlightID: "FL123_0"},
		{PassengerName: "Asha Rao"},
	}
	for _, cmd := range cases {
		if _, err := svc.Create(context.Background(), cmd); err != ErrBadRequest {
			t.Errorf("Create(%+v) err = %v, want ErrBadRequest", cmd, err)
		}
	}
}

func TestFillDefaults(t *testing.T) {
	svc := newTestService(nil, nil)
	now := svc.now()

	b := &Booking{}
	svc.fillDefaults(b, now)

	if m, _ := regexp.MatchString(`^6E\d{4}$`, b.FlightNumber); !m {
		t.Errorf("default flight number = %q, want 6E followed by four digits", b.FlightNumber)
	}
	if b.Departure != "Unknown" || b.Arrival != "Unknown" {
		t.Errorf("default route = %q -> %q, want Unknown -> Unknown", b.Departure, b.Arrival)
	}
	if b.Date != "2026-07-20" {
		t.Errorf("default date = %q, want today", b.Date)
	}
	if b.Price < 3000 || b.Price > 7999 {
		t.Errorf("default price = %d, want in [3000, 7999]", b.Price)
	}
}

func TestFillDefaultsKeepsProvidedValues(t *testing.T) {
	svc := newTestService(nil, nil)

	b := &Booking{
		FlightNumber: "AI101",
		Departure:    "Delhi",
		Arrival:      "Mumbai",
		Date:         "2026-08-01",
		Price:        4599,
	}
	svc.fillDefaults(b, svc.now())

	if b.FlightNumber != "AI101" || b.Departure != "Delhi" || b.Arrival != "Mumbai" ||
		b.Date != "2026-08-01" || b.Price != 4599 {
		t.Errorf("provided fields were overwritten: %+v", b)
	}
}

func TestNewBookingID(t *testing.T) {
	re := regexp.MustCompile(`^BK[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id := newBookingID()
		if !re.MatchString(id) {
			t.Fatalf("booking id %q does not match %s", id, re)
		}
		if seen[id] {
			t.Fatalf("duplicate booking id %q", id)
		}
		seen[id] = true
	}
}

func TestTicketPDF(t *testing.T) {
	b := &Booking{
		BookingID:     "BK12AB34CD",
		FlightID:      "FL123_0",
		FlightNumber:  "6E2345",
		Passenger:     "Asha Rao",
		Departure:     "Delhi",
		Arrival:       "Mumbai",
		Date:          "2026-08-01",
		Price:         4599,
		Status:        "Confirmed",
		Email:         "asha@example.com",
		BookingDate:   time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC),
		PaymentStatus: "Completed",
	}
	out, err := TicketPDF(b)
	if err != nil {
		t.Fatalf("TicketPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("ticket output is not a PDF (starts with %q)", out[:4])
	}
}

type stubNotifier struct {
	sent []string
	err  error
}

func (n *stubNotifier) SendBookingConfirmation(_ context.Context, b *Booking) error {
	n.sent = append(n.sent, b.BookingID)
	return n.err
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("SKYBOT_TEST_DSN")
	if dsn == "" {
		t.Skip("SKYBOT_TEST_DSN not set; skipping DB-backed booking tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := infra.Migrate(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE bookings"); err != nil {
		t.Fatalf("truncate bookings: %v", err)
	}
	return NewStore(db)
}

func TestCreateAndGet(t *testing.T) {
	notifier := &stubNotifier{}
	svc := newTestService(setupTestStore(t), notifier)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateCommand{
		FlightID:      "FL123_0",
		PassengerName: "Asha Rao",
		Email:         "asha@example.com",
		Departure:     "Delhi",
		Arrival:       "Mumbai",
		Date:          "2026-08-01",
		FlightNumber:  "6E2345",
		Price:         4599,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Status != "Confirmed" || b.PaymentStatus != "Completed" {
		t.Errorf("booking status = %s/%s, want Confirmed/Completed", b.Status, b.PaymentStatus)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != b.BookingID {
		t.Errorf("notifier calls = %v, want one call for %s", notifier.sent, b.BookingID)
	}

	got, err := svc.Get(ctx, types.ID(b.BookingID))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Passenger != "Asha Rao" || got.Price != 4599 {
		t.Errorf("stored booking = %+v", got)
	}

	if _, err := svc.Get(ctx, types.ID("BKDOESNOTX")); err != ErrNotFound {
		t.Errorf("Get(unknown) err = %v, want ErrNotFound", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List returned %d bookings, want 1", len(all))
	}
}

func TestCreateWithoutEmailSkipsNotification(t *testing.T) {
	notifier := &stubNotifier{}
	svc := newTestService(setupTestStore(t), notifier)

	if _, err := svc.Create(context.Background(), CreateCommand{
		FlightID:      "FL123_1",
		PassengerName: "Ravi Kumar",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("notifier called %d times for booking without email", len(notifier.sent))
	}
}
