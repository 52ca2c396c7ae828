package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:        "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Reference: "LR-A1B2C3D4",
		Type:      models.OrderTypePickup,
		Payment:   models.PaymentCard,
		PlacedAt:  time.Now().UTC(),
	}
}

func TestSimulatedSubmitter(t *testing.T) {
	t.Run("accepts after delay", func(t *testing.T) {
		s := &SimulatedSubmitter{Delay: 10 * time.Millisecond}
		if err := s.Submit(context.Background(), testOrder()); err != nil {
			t.Errorf("Submit: %v", err)
		}
	})

	t.Run("fail mode returns submission error", func(t *testing.T) {
		s := &SimulatedSubmitter{Fail: true}
		err := s.Submit(context.Background(), testOrder())
		if !errors.Is(err, ErrSubmissionFailed) {
			t.Errorf("err = %v, want ErrSubmissionFailed", err)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		s := &SimulatedSubmitter{Delay: time.Minute}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := s.Submit(ctx, testOrder())
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("err = %v, want DeadlineExceeded", err)
		}
	})
}

func TestHTTPSubmitter(t *testing.T) {
	t.Run("posts the order as json", func(t *testing.T) {
		var received models.Order
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %s, want application/json", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("decode: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		s := NewHTTPSubmitter(server.URL, 5*time.Second)
		if err := s.Submit(context.Background(), testOrder()); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if received.Reference != "LR-A1B2C3D4" {
			t.Errorf("reference = %s, want LR-A1B2C3D4", received.Reference)
		}
	})

	t.Run("non-2xx is a submission failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		s := NewHTTPSubmitter(server.URL, 5*time.Second)
		err := s.Submit(context.Background(), testOrder())
		if !errors.Is(err, ErrSubmissionFailed) {
			t.Errorf("err = %v, want ErrSubmissionFailed", err)
		}
	})

	t.Run("unreachable endpoint is a submission failure", func(t *testing.T) {
		s := NewHTTPSubmitter("http://127.0.0.1:1", time.Second)
		err := s.Submit(context.Background(), testOrder())
		if !errors.Is(err, ErrSubmissionFailed) {
			t.Errorf("err = %v, want ErrSubmissionFailed", err)
		}
	})
}
