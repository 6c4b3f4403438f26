package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"caseflow/pkg/platform/circuit"
	"caseflow/pkg/platform/sentinel"
)

// Submitter delivers a lead to the downstream intake endpoint. Success or
// failure is binary; a failure leaves the wizard on the contact step.
type Submitter interface {
	Submit(ctx context.Context, l *Lead) error
}

// HTTPSubmitter posts the flattened payload as JSON. RetryMax defaults to 0:
// the wizard surfaces failures to the user instead of retrying behind their
// back, but deployments may opt in to retries. A circuit breaker fails fast
// once the intake endpoint has broken several calls in a row.
type HTTPSubmitter struct {
	endpoint string
	client   *retryablehttp.Client
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// NewHTTPSubmitter builds a submitter for the given endpoint.
func NewHTTPSubmitter(endpoint string, retryMax int, logger *slog.Logger) *HTTPSubmitter {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.Logger = nil
	if logger != nil {
		client.Logger = slog.NewLogLogger(logger.Handler(), slog.LevelDebug)
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   client,
		breaker:  circuit.New("lead-intake", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2)),
		logger:   logger,
	}
}

// Submit posts the lead; any non-2xx response is a failure. While the circuit
// is open most calls fail fast, but one probe per window still goes out so the
// breaker closes once the endpoint recovers.
func (s *HTTPSubmitter) Submit(ctx context.Context, l *Lead) error {
	if !s.breaker.Allow() {
		return fmt.Errorf("submit lead: circuit open: %w", sentinel.ErrUnavailable)
	}

	if err := s.post(ctx, l); err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened && s.logger != nil {
			s.logger.Error("lead intake circuit opened", "endpoint", s.endpoint)
		}
		return err
	}

	if _, change := s.breaker.RecordSuccess(); change.Closed && s.logger != nil {
		s.logger.Info("lead intake circuit closed", "endpoint", s.endpoint)
	}
	return nil
}

func (s *HTTPSubmitter) post(ctx context.Context, l *Lead) error {
	body, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submit lead: status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	return nil
}

// NoopSubmitter is used when no endpoint is configured; leads are still
// recorded locally.
type NoopSubmitter struct{}

// Submit accepts the lead without delivering it anywhere.
func (NoopSubmitter) Submit(ctx context.Context, l *Lead) error { return nil }
