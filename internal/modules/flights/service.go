// README: Flight provider service; synthesizes offers and status records.
package flights

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"skybot/internal/cities"
	"skybot/internal/observability"
)

const offersPerSearch = 5

type Service struct {
	cache *Cache
	now   func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a provider. cache may be nil (caching disabled); rng may be
// nil, in which case a time-seeded source is used.
func NewService(cache *Cache, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{cache: cache, rng: rng, now: time.Now}
}

// Search returns up to five offers for a validated (origin, destination, date)
// triple, sorted ascending by price. Unknown city keys yield an empty list,
// never an error; date may be an ISO date, a raw phrase, or empty.
func (s *Service) Search(ctx context.Context, from, to, date string) ([]Offer, error) {
	fromCity, okFrom := cities.Get(from)
	toCity, okTo := cities.Get(to)
	if !okFrom || !okTo {
		return nil, nil
	}

	if s.cache != nil {
		offers, hit, err := s.cache.Get(ctx, from, to, date)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn("flight cache read failed", "error", err)
		} else if hit {
			return offers, nil
		}
	}

	offers := s.generate(fromCity, toCity, date)

	if s.cache != nil {
		if err := s.cache.Set(ctx, from, to, date, offers); err != nil {
			observability.LoggerFromContext(ctx).Warn("flight cache write failed", "error", err)
		}
	}
	return offers, nil
}

func (s *Service) generate(fromCity, toCity cities.City, date string) []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	displayDate := date
	dateObj := s.now()
	if date != "" {
		if parsed, err := parseDate(date); err == nil {
			dateObj = parsed
			displayDate = parsed.Format("2 Jan 2006")
		}
	}
	rawDate := dateObj.Format("2006-01-02")

	offers := make([]Offer, 0, offersPerSearch)
	for i := 0; i < offersPerSearch; i++ {
		airline := Airlines[s.rng.Intn(len(Airlines))]
		flightNumber := fmt.Sprintf("%s%d", airline.Code, s.rng.Intn(9000)+1000)

		departureHour := s.rng.Intn(20) + 4
		departureMinute := s.rng.Intn(60)
		durationMin := s.rng.Intn(180) + 60

		departure := time.Date(dateObj.Year(), dateObj.Month(), dateObj.Day(), departureHour, departureMinute, 0, 0, dateObj.Location())
		arrival := departure.Add(time.Duration(durationMin) * time.Minute)

		basePrice := s.rng.Intn(8000) + 2000
		originalPrice := 0
		if s.rng.Float64() > 0.5 {
			originalPrice = basePrice * 12 / 10
		}

		var amenities []string
		for _, a := range []string{"WiFi", "Meals"} {
			if s.rng.Float64() > 0.5 {
				amenities = append(amenities, a)
			}
		}

		stops := 0
		if s.rng.Float64() > 0.7 {
			stops = 1
		}

		offers = append(offers, Offer{
			ID:           fmt.Sprintf("FL%d_%d", s.now().UnixMilli(), i),
			Airline:      airline.Name,
			FlightNumber: flightNumber,
			Departure: Leg{
				Airport: fromCity.Aliases[0],
				City:    fromCity.Aliases[1],
				Time:    departure.Format("15:04"),
				Date:    displayDate,
				RawDate: rawDate,
			},
			Arrival: Leg{
				Airport: toCity.Aliases[0],
				City:    toCity.Aliases[1],
				Time:    arrival.Format("15:04"),
				Date:    displayDate,
			},
			Duration:      fmt.Sprintf("%dh %dm", durationMin/60, durationMin%60),
			Price:         basePrice,
			OriginalPrice: originalPrice,
			Class:         "Economy",
			Stops:         stops,
			Available:     s.rng.Float64() > 0.1,
			Amenities:     amenities,
			Rating:        fmt.Sprintf("%.1f", s.rng.Float64()*2+3),
		})
	}

	sort.Slice(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	return offers
}

// Lookup returns a synthesized status card for a flight number.
func (s *Service) Lookup(_ context.Context, flightNumber string) (StatusRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := StatusRecord{
		FlightNumber:       flightNumber,
		Status:             "On Time",
		Gate:               fmt.Sprintf("A%d", s.rng.Intn(30)+1),
		Terminal:           s.rng.Intn(3) + 1,
		ScheduledDeparture: "10:30 AM",
		ActualDeparture:    "10:30 AM",
		LastUpdated:        s.now().UTC().Format(time.RFC3339),
	}
	if s.rng.Float64() <= 0.3 {
		delay := fmt.Sprintf("%d minutes", s.rng.Intn(60)+15)
		rec.Status = "Delayed"
		rec.Delay = &delay
		rec.ActualDeparture = "11:15 AM"
	}
	return rec, nil
}

func parseDate(date string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{"2006-01-02", "January 2, 2006", "2 January, 2006", "2 January 2006"} {
		t, err := time.Parse(layout, date)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
