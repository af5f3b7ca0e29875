// README: Booking record definition.
package booking

import "time"

type Booking struct {
	BookingID     string    `json:"bookingId"`
	FlightID      string    `json:"flightId"`
	FlightNumber  string    `json:"flightNumber"`
	Passenger     string    `json:"passenger"`
	Departure     string    `json:"departure"`
	Arrival       string    `json:"arrival"`
	Date          string    `json:"date"`
	Price         int64     `json:"price"`
	Status        string    `json:"status"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	BookingDate   time.Time `json:"bookingDate"`
	PaymentStatus string    `json:"paymentStatus"`
}
