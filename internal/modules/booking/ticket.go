// README: E-ticket PDF rendering for confirmed bookings.
package booking

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// TicketPDF renders a one-page e-ticket and returns the raw bytes.
func TicketPDF(b *Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(16, 42, 94)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "SkyBot", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Electronic Ticket", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 42, 94)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking")
	row("Booking reference", b.BookingID)
	row("Status", b.Status)
	row("Booked", b.BookingDate.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	sectionHeader("Passenger")
	row("Name", b.Passenger)
	if b.Email != "" {
		row("Email", b.Email)
	}
	if b.Phone != "" {
		row("Phone", b.Phone)
	}
	pdf.Ln(4)

	sectionHeader("Flight")
	row("Flight", b.FlightNumber)
	row("Route", fmt.Sprintf("%s - %s", b.Departure, b.Arrival))
	row("Date", fmtTravelDate(b.Date))
	row("Fare", fmt.Sprintf("Rs. %d", b.Price))
	row("Payment", b.PaymentStatus)
	pdf.Ln(4)

	// footer
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Carry a government-issued photo ID matching the passenger name. Check in closes 45 minutes before departure.",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtTravelDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
