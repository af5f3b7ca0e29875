// README: Dialogue response builder; one handler per intent.
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skybot/internal/cities"
	"skybot/internal/modules/flights"
)

// FlightSearcher is the external flight provider. It must not fail for unknown
// cities; the engine resolves cities before calling.
type FlightSearcher interface {
	Search(ctx context.Context, from, to, date string) ([]flights.Offer, error)
}

// StatusLookup is the external flight status provider.
type StatusLookup interface {
	Lookup(ctx context.Context, flightNumber string) (flights.StatusRecord, error)
}

// Service is the dialogue interpretation engine. It holds no mutable state;
// every reply is a pure function of (message, language, now) plus the
// providers.
type Service struct {
	flights FlightSearcher
	status  StatusLookup
	now     func() time.Time
}

func NewService(flightProvider FlightSearcher, statusProvider StatusLookup) *Service {
	return &Service{flights: flightProvider, status: statusProvider, now: time.Now}
}

// Reply interprets one message and assembles the structured response.
func (s *Service) Reply(ctx context.Context, message, language string) (*Response, error) {
	if language == "" {
		language = "en"
	}
	params := ExtractFlightInfo(message, s.now())

	switch Classify(message) {
	case IntentGreeting:
		return &Response{
			Text:        Translate("Hello! How can I help you today?", language),
			Suggestions: Suggestions(ContextGreeting, language),
		}, nil

	case IntentFlightStatus:
		return s.flightStatusReply(ctx, message, language)

	case IntentFlightSearch:
		return s.flightSearchReply(ctx, params, language)

	case IntentHelp:
		return &Response{
			Text: Translate("I can help you with:\n• Search flights between Indian cities\n• Compare prices across airlines\n• Book tickets instantly\n• Check flight status\n• Find the best deals\n• Manage your bookings\n\nJust tell me where you want to go!", language),
			Suggestions: Suggestions(ContextDefault, language),
		}, nil

	case IntentPriceInquiry:
		return &Response{
			Text: Translate("I can help you find the best flight prices! Flight costs vary based on destination, dates, and availability. Tell me your travel details and I'll show you the cheapest options first.", language),
			Suggestions: []string{
				"Find cheapest flights to Mumbai",
				"Show budget options to Bangalore",
				"Compare prices to Chennai",
				"Find deals for next week",
			},
		}, nil

	case IntentStatusInquiry:
		return &Response{
			Text: Translate("I can check flight status for you! Please provide the flight number (like AI 101 or 6E 2345) and I'll get you the latest information.", language),
			Suggestions: []string{
				"Check AI 101 status",
				"Flight 6E 2345 status",
				"Is my flight on time?",
				"Show departure delays",
			},
		}, nil

	case IntentBookingInquiry:
		return &Response{
			Text: Translate("I can help you book flights! First, let me search for available options. Where would you like to travel?", language),
			Suggestions: []string{
				"Delhi to Mumbai flights",
				"Bangalore to Chennai options",
				"Show flights to Goa",
				"Find business class tickets",
			},
		}, nil

	case IntentOptionsInquiry:
		return &Response{
			Text: Translate("I'd be happy to show you flight options! Please tell me your departure city, destination, and travel date so I can find the best flights for you.", language),
			Suggestions: []string{
				"I want to fly from Delhi to Mumbai tomorrow",
				"Show flights from Jaipur to Delhi on July 25th",
				"Find flights from Bangalore to Chennai next week",
				"Book a flight to Goa",
			},
		}, nil

	default:
		return &Response{
			Text: Translate("I understand you're looking for flight information. I can help you search flights, compare prices, and book tickets for destinations across India. Where would you like to travel?", language),
			Suggestions: Suggestions(ContextDefault, language),
		}, nil
	}
}

func (s *Service) flightStatusReply(ctx context.Context, message, language string) (*Response, error) {
	flightNumber := extractFlightNumber(message)
	record, err := s.status.Lookup(ctx, flightNumber)
	if err != nil {
		return nil, fmt.Errorf("status lookup %s: %w", flightNumber, err)
	}
	return &Response{
		Text:         Translate(fmt.Sprintf("I'll check the status of flight %s for you.", flightNumber), language),
		FlightStatus: &record,
		Suggestions:  Suggestions(ContextFlightStatus, language),
	}, nil
}

func (s *Service) flightSearchReply(ctx context.Context, params SearchParams, language string) (*Response, error) {
	if params.From == "" || params.To == "" {
		var missing []string
		if params.From == "" {
			missing = append(missing, "departure city")
		}
		if params.To == "" {
			missing = append(missing, "destination")
		}
		text := fmt.Sprintf("I'd be happy to help you find flights! I need your %s to search for the best options. Try saying something like \"I want to fly from Delhi to Mumbai tomorrow\"", strings.Join(missing, " and "))
		return &Response{
			Text:        Translate(text, language),
			Suggestions: Suggestions(ContextDefault, language),
		}, nil
	}

	offers, err := s.flights.Search(ctx, params.From, params.To, params.Date)
	if err != nil {
		return nil, fmt.Errorf("flight search %s-%s: %w", params.From, params.To, err)
	}

	if len(offers) == 0 {
		return &Response{
			Text: Translate("Sorry, I couldn't find any flights for that route. Please check the city names and try again.", language),
			Suggestions: []string{
				"Try Delhi to Mumbai",
				"Search Bangalore to Chennai",
				"Find flights to Goa",
				"Show popular routes",
			},
		}, nil
	}

	dateText := ""
	if params.Date != "" {
		dateText = " on " + params.Date
	}
	text := fmt.Sprintf("Great! I found %d flights from %s to %s%s. Here are the best options sorted by price:",
		len(offers), cities.DisplayName(params.From), cities.DisplayName(params.To), dateText)
	return &Response{
		Text:          Translate(text, language),
		FlightResults: offers,
		Suggestions:   Suggestions(ContextFlightResults, language),
	}, nil
}

// Apology is the fixed degraded response the boundary returns when anything in
// the pipeline fails; no partial structured payload is ever emitted.
func Apology() *Response {
	return &Response{
		Text: "Sorry, I encountered an error processing your request. Please try again.",
		Suggestions: []string{
			"Try searching again",
			"Find flights to Mumbai",
			"Show me help options",
			"Contact support",
		},
	}
}
