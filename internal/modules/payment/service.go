// README: Payment service simulates gateway processing for bookings.
package payment

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"skybot/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrDeclined   = errors.New("payment declined by bank")
)

type Request struct {
	BookingID string       `json:"bookingId"`
	Amount    int64        `json:"amount"`
	Currency  string       `json:"currency"`
	Method    string       `json:"paymentMethod"`
	Card      *CardDetails `json:"cardDetails,omitempty"`
}

type CardDetails struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holderName"`
}

type Result struct {
	TransactionID string
	Status        string
	Charged       types.Money
	BookingID     string
	ProcessedAt   time.Time
}

type Service struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService() *Service {
	return &Service{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Process charges the given booking. Roughly one attempt in ten is
// declined to exercise the failure path downstream.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	if req.BookingID == "" || req.Amount == 0 || req.Method == "" {
		return nil, ErrBadRequest
	}

	s.mu.Lock()
	declined := s.rng.Float64() <= 0.1
	s.mu.Unlock()
	if declined {
		return nil, ErrDeclined
	}

	charged := types.Money{Amount: req.Amount, Currency: req.Currency}
	if charged.Currency == "" {
		charged = types.INR(req.Amount)
	}

	now := s.now()
	return &Result{
		TransactionID: newTransactionID(now),
		Status:        "completed",
		Charged:       charged,
		BookingID:     req.BookingID,
		ProcessedAt:   now,
	}, nil
}

func newTransactionID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}
	return "TXN" + ms
}
