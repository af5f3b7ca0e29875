// README: Flight offer and status record definitions plus the airline roster.
package flights

type Airline struct {
	Name string
	Code string
}

// Airlines is the carrier roster offers are synthesized from.
var Airlines = []Airline{
	{Name: "IndiGo", Code: "6E"},
	{Name: "Air India", Code: "AI"},
	{Name: "SpiceJet", Code: "SG"},
	{Name: "Vistara", Code: "UK"},
	{Name: "GoAir", Code: "G8"},
	{Name: "AirAsia India", Code: "I5"},
	{Name: "Alliance Air", Code: "9I"},
}

// Leg is one endpoint of a flight.
type Leg struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	// RawDate keeps the ISO form for downstream booking, while Date carries
	// the display form.
	RawDate string `json:"rawDate,omitempty"`
}

// Offer is one synthesized flight option. Offer.ID is the join key the booking
// subsystem uses later.
type Offer struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	FlightNumber  string   `json:"flightNumber"`
	Departure     Leg      `json:"departure"`
	Arrival       Leg      `json:"arrival"`
	Duration      string   `json:"duration"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Class         string   `json:"class"`
	Stops         int      `json:"stops"`
	Available     bool     `json:"available"`
	Amenities     []string `json:"amenities"`
	Rating        string   `json:"rating"`
}

// StatusRecord is a point-in-time status card for one flight.
type StatusRecord struct {
	FlightNumber       string  `json:"flightNumber"`
	Status             string  `json:"status"`
	Delay              *string `json:"delay"`
	Gate               string  `json:"gate"`
	Terminal           int     `json:"terminal"`
	ScheduledDeparture string  `json:"scheduledDeparture"`
	ActualDeparture    string  `json:"actualDeparture"`
	LastUpdated        string  `json:"lastUpdated"`
}
