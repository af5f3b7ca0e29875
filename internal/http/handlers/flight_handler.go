// README: Flight search and status handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skybot/internal/cities"
	"skybot/internal/modules/flights"
)

type FlightHandler struct {
	flights *flights.Service
}

func NewFlightHandler(svc *flights.Service) *FlightHandler {
	return &FlightHandler{flights: svc}
}

type searchFlightsReq struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
	Class      string `json:"class"`
}

func (h *FlightHandler) Search(c *gin.Context) {
	var req searchFlightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.From == "" || req.To == "" || req.Date == "" {
		writeError(c, http.StatusBadRequest, "Missing required parameters: from, to, date")
		return
	}

	fromKey, _ := cities.Resolve(req.From)
	toKey, _ := cities.Resolve(req.To)
	offers, err := h.flights.Search(c.Request.Context(), fromKey, toKey, req.Date)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if offers == nil {
		offers = []flights.Offer{}
	}
	applyClass(offers, req.Class)

	writeJSON(c, http.StatusOK, gin.H{"flights": offers})
}

// applyClass reprices cached economy offers for the requested cabin.
// Offers are cached class-agnostic; the multiplier is applied on the
// way out so every cabin shares one cache entry per route and date.
func applyClass(offers []flights.Offer, class string) {
	class = strings.ToLower(strings.TrimSpace(class))
	if class == "" {
		class = "economy"
	}
	mult := 1
	switch class {
	case "business":
		mult = 3
	case "first":
		mult = 5
	}
	label := strings.ToUpper(class[:1]) + class[1:]
	for i := range offers {
		offers[i].Price *= mult
		offers[i].OriginalPrice *= mult
		offers[i].Class = label
	}
}

func (h *FlightHandler) Status(c *gin.Context) {
	flightNumber := c.Query("flightNumber")
	if flightNumber == "" {
		writeError(c, http.StatusBadRequest, "Flight number is required")
		return
	}

	record, err := h.flights.Lookup(c.Request.Context(), flightNumber)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"flightStatus": record})
}
