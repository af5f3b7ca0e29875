// README: Notification service records and (simulated) delivers messages.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"skybot/internal/modules/booking"
)

var ErrBadRequest = errors.New("bad request")

type Service struct {
	store *Store
	log   *slog.Logger
	now   func() time.Time
}

func NewService(store *Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log, now: time.Now}
}

type SendCommand struct {
	Type         string `json:"type"`
	Recipient    string `json:"recipient"`
	BookingID    string `json:"bookingId"`
	FlightNumber string `json:"flightNumber"`
	Message      string `json:"message"`
}

func (s *Service) Send(ctx context.Context, cmd SendCommand) (*Notification, error) {
	if cmd.Recipient == "" || cmd.Message == "" {
		return nil, ErrBadRequest
	}
	if cmd.Type == "" {
		cmd.Type = TypeReminder
	}

	now := s.now()
	n := &Notification{
		ID:           "NOTIF" + strconv.FormatInt(now.UnixMilli(), 10),
		Type:         cmd.Type,
		Recipient:    cmd.Recipient,
		BookingID:    cmd.BookingID,
		FlightNumber: cmd.FlightNumber,
		Message:      cmd.Message,
		Status:       "sent",
		SentAt:       now,
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.store.List(ctx)
}

type EmailCommand struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmail simulates an outbound email. A real deployment would hand
// this to a mail provider; here delivery is a structured log line.
func (s *Service) SendEmail(ctx context.Context, cmd EmailCommand) (string, error) {
	if cmd.To == "" || cmd.Subject == "" || cmd.Body == "" {
		return "", ErrBadRequest
	}

	now := s.now()
	messageID := "email_" + strconv.FormatInt(now.UnixMilli(), 10)
	s.log.InfoContext(ctx, "email sent",
		"message_id", messageID, "to", cmd.To, "subject", cmd.Subject)
	return messageID, nil
}

// SendBookingConfirmation satisfies booking.Notifier. It emails the
// passenger and records a booking_confirmation notification.
func (s *Service) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	subject := fmt.Sprintf("Flight Booking Confirmation - %s", b.BookingID)
	body := fmt.Sprintf("Your flight %s from %s to %s on %s is confirmed. Booking reference: %s.",
		b.FlightNumber, b.Departure, b.Arrival, b.Date, b.BookingID)

	if _, err := s.SendEmail(ctx, EmailCommand{To: b.Email, Subject: subject, Body: body}); err != nil {
		return err
	}
	_, err := s.Send(ctx, SendCommand{
		Type:         TypeBookingConfirmation,
		Recipient:    b.Email,
		BookingID:    b.BookingID,
		FlightNumber: b.FlightNumber,
		Message:      subject,
	})
	return err
}
