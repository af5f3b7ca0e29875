// README: Notification record definition.
package notification

import "time"

const (
	TypeBookingConfirmation = "booking_confirmation"
	TypeFlightUpdate        = "flight_update"
	TypePaymentReceipt      = "payment_receipt"
	TypeReminder            = "reminder"
)

type Notification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Recipient    string    `json:"recipient"`
	BookingID    string    `json:"bookingId,omitempty"`
	FlightNumber string    `json:"flightNumber,omitempty"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	SentAt       time.Time `json:"sentAt"`
}
