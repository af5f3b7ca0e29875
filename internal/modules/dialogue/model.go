// README: Dialogue engine types: search slots, intents, and the reply envelope.
package dialogue

import "skybot/internal/modules/flights"

// SearchParams holds the slots extracted from one message. Zero values mean
// the slot was not mentioned, which the response builder distinguishes from
// "mentioned but unrecognized".
type SearchParams struct {
	From       string
	To         string
	Date       string
	Passengers int
	Class      string
}

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentFlightStatus   Intent = "flight_status"
	IntentFlightSearch   Intent = "flight_search"
	IntentHelp           Intent = "help"
	IntentPriceInquiry   Intent = "price_inquiry"
	IntentStatusInquiry  Intent = "status_inquiry"
	IntentBookingInquiry Intent = "booking_inquiry"
	IntentOptionsInquiry Intent = "options_inquiry"
	IntentFallback       Intent = "fallback"
)

// Response is the structured reply returned to the caller. Text is always set;
// at most one of FlightResults and FlightStatus is present.
type Response struct {
	Text          string                `json:"text"`
	Suggestions   []string              `json:"suggestions"`
	FlightResults []flights.Offer       `json:"flightResults,omitempty"`
	FlightStatus  *flights.StatusRecord `json:"flightStatus,omitempty"`
}
