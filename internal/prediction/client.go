package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
	"github.com/lesotho-gov/healthcost/internal/shared/metrics"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 1 << 20

// Client talks to one upstream prediction service
type Client struct {
	baseURL    string
	httpClient *http.Client
	schema     Schema
	limiter    *rate.Limiter
}

// ClientConfig holds configuration for the prediction client
type ClientConfig struct {
	// BaseURL is the service origin; requests go to BaseURL + /predict
	BaseURL string

	// Timeout bounds each upstream call
	Timeout time.Duration

	// MaxRequestsPerSecond throttles outbound calls
	MaxRequestsPerSecond int
}

// DefaultClientConfig returns default configuration
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:              "http://localhost:10000",
		Timeout:              30 * time.Second,
		MaxRequestsPerSecond: 10,
	}
}

// NewClient creates a prediction client bound to one schema variant
func NewClient(cfg ClientConfig, schema Schema) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultClientConfig().Timeout
	}
	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = DefaultClientConfig().MaxRequestsPerSecond
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		schema:     schema,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Variant returns the schema variant this client speaks
func (c *Client) Variant() string {
	return c.schema.Variant()
}

// Predict issues exactly one POST to the prediction service and classifies
// the outcome: transport fault, non-200 status, missing success key, or a
// decoded estimate. No retries; duplicate suppression is the controller's
// concern.
func (c *Client) Predict(ctx context.Context, payload any) (*Estimate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Transport(err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	metrics.UpstreamInFlightInc()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamInFlightDec()
	metrics.RecordUpstreamRequest(c.schema.Variant(), time.Since(start))

	if err != nil {
		log.Printf("prediction request failed: %v", err)
		return nil, apperrors.Transport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Printf("prediction response read failed: %v", err)
		return nil, apperrors.Transport(err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("prediction request returned status %d", resp.StatusCode)
		return nil, apperrors.Server(resp.StatusCode, excerpt(raw))
	}

	est, appErr := c.schema.DecodeEstimate(raw)
	if appErr != nil {
		log.Printf("prediction response rejected: %s", appErr.Message)
		return nil, appErr
	}
	return est, nil
}

// Health checks the prediction service health endpoint
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return apperrors.Internal(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Server(resp.StatusCode, "")
	}
	return nil
}

// ModelInfo fetches the model metadata the service publishes. Only the
// demographic service exposes this endpoint today.
func (c *Client) ModelInfo(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/model-info", nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Server(resp.StatusCode, excerpt(raw))
	}

	var info map[string]any
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, apperrors.Schema("model info response is not valid JSON")
	}
	return info, nil
}

func excerpt(body []byte) string {
	const max = 512
	s := string(body)
	if len(s) > max {
		return s[:max]
	}
	return s
}
