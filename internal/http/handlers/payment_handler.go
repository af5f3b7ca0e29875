// README: Payment processing handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skybot/internal/modules/payment"
)

type PaymentHandler struct {
	payments *payment.Service
}

func NewPaymentHandler(svc *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: svc}
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var req payment.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.payments.Process(c.Request.Context(), req)
	switch err {
	case nil:
	case payment.ErrBadRequest:
		writeError(c, http.StatusBadRequest, "Missing required payment information")
		return
	case payment.ErrDeclined:
		writeJSON(c, http.StatusPaymentRequired, gin.H{
			"success":   false,
			"status":    "failed",
			"error":     "Payment declined by bank",
			"bookingId": req.BookingID,
			"message":   "Please check your payment details and try again",
		})
		return
	default:
		writeDomainError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"success":       true,
		"transactionId": res.TransactionID,
		"status":        res.Status,
		"amount":        res.Charged.Amount,
		"currency":      res.Charged.Currency,
		"bookingId":     res.BookingID,
		"processedAt":   res.ProcessedAt,
		"message":       "Payment processed successfully",
	})
}
