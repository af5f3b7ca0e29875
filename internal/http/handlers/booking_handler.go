// README: Booking handlers (create, fetch, list, e-ticket download).
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skybot/internal/modules/booking"
	"skybot/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var cmd booking.CreateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), cmd)
	if err == booking.ErrBadRequest {
		writeError(c, http.StatusBadRequest, "Missing required fields: flightId and passengerName")
		return
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"booking": b,
		"message": "Flight booked successfully!",
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	if bookingID := c.Query("bookingId"); bookingID != "" {
		b, err := h.bookings.Get(c.Request.Context(), types.ID(bookingID))
		if err == booking.ErrNotFound {
			writeError(c, http.StatusNotFound, "Booking not found")
			return
		}
		if err != nil {
			writeDomainError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"booking": b})
		return
	}

	all, err := h.bookings.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": all})
}

func (h *BookingHandler) Ticket(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err == booking.ErrNotFound {
		writeError(c, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}

	out, err := booking.TicketPDF(b)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", b.BookingID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", out)
}
