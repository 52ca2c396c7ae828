package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

var (
	ErrSubmissionFailed = errors.New("order submission failed")
)

// Submitter delivers a confirmed order to the fulfillment system
type Submitter interface {
	Submit(ctx context.Context, o *models.Order) error
}

// SimulatedSubmitter accepts every order after a fixed delay. Fail makes
// every submission return ErrSubmissionFailed, for exercising the failure
// path.
type SimulatedSubmitter struct {
	Delay time.Duration
	Fail  bool
}

// Submit waits out the configured delay, honoring the context
func (s *SimulatedSubmitter) Submit(ctx context.Context, o *models.Order) error {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.Fail {
		return ErrSubmissionFailed
	}
	return nil
}

// HTTPSubmitter posts orders as JSON to a fulfillment endpoint
type HTTPSubmitter struct {
	url    string
	client *http.Client
}

// NewHTTPSubmitter creates a submitter targeting the given URL
func NewHTTPSubmitter(url string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit sends the order; any non-2xx response is a submission failure
func (s *HTTPSubmitter) Submit(ctx context.Context, o *models.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrSubmissionFailed, resp.StatusCode)
	}
	return nil
}
