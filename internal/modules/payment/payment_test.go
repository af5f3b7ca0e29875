// README: Payment service tests.
package payment

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestService(seed int64) *Service {
	s := NewService()
	s.now = func() time.Time { return time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC) }
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

func TestProcessRejectsMissingFields(t *testing.T) {
	svc := newTestService(1)
	cases := []Request{
		{},
		{BookingID: "BK12AB34CD", Amount: 4599},
		{BookingID: "BK12AB34CD", Method: "card"},
		{Amount: 4599, Method: "card"},
	}
	for _, req := range cases {
		if _, err := svc.Process(context.Background(), req); err != ErrBadRequest {
			t.Errorf("Process(%+v) err = %v, want ErrBadRequest", req, err)
		}
	}
}

func TestProcessCompletes(t *testing.T) {
	svc := newTestService(1)
	req := Request{BookingID: "BK12AB34CD", Amount: 4599, Currency: "INR", Method: "card"}

	var res *Result
	var err error
	for i := 0; i < 5; i++ {
		res, err = svc.Process(context.Background(), req)
		if err == nil {
			break
		}
		if err != ErrDeclined {
			t.Fatalf("Process: %v", err)
		}
	}
	if res == nil {
		t.Fatal("five attempts all declined; expected at least one success")
	}

	if !strings.HasPrefix(res.TransactionID, "TXN") || len(res.TransactionID) != 13 {
		t.Errorf("transaction id = %q, want TXN plus ten digits", res.TransactionID)
	}
	if res.Status != "completed" {
		t.Errorf("status = %q, want completed", res.Status)
	}
	if res.Charged.Amount != 4599 || res.Charged.Currency != "INR" || res.BookingID != "BK12AB34CD" {
		t.Errorf("result echo = %+v", res)
	}
}

func TestProcessDefaultsCurrencyToINR(t *testing.T) {
	svc := newTestService(1)
	req := Request{BookingID: "BK12AB34CD", Amount: 4599, Method: "card"}

	for i := 0; i < 5; i++ {
		res, err := svc.Process(context.Background(), req)
		if err == ErrDeclined {
			continue
		}
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if res.Charged.Currency != "INR" {
			t.Errorf("currency = %q, want INR", res.Charged.Currency)
		}
		return
	}
	t.Fatal("five attempts all declined")
}

func TestProcessDeclineRate(t *testing.T) {
	svc := newTestService(7)
	req := Request{BookingID: "BK12AB34CD", Amount: 4599, Currency: "INR", Method: "upi"}

	declined := 0
	for i := 0; i < 1000; i++ {
		if _, err := svc.Process(context.Background(), req); err == ErrDeclined {
			declined++
		}
	}
	if declined < 50 || declined > 200 {
		t.Errorf("declined %d of 1000, want roughly 10%%", declined)
	}
}
