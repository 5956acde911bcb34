// Package textgen calls the external generative-text API that produces
// marketing descriptions for club services. The call is pure text-in/text-out
// with no state, so it is safe to retry with backoff.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrUpstream is returned when the text service fails or times out.
var ErrUpstream = errors.New("text generation service unavailable")

const (
	defaultTimeout = 15 * time.Second
	retryBase      = 500 * time.Millisecond
	maxRetries     = 3
)

// Request describes the service being marketed.
type Request struct {
	ServiceName    string   `json:"service_name"`
	ActivityType   string   `json:"activity_type"`
	TargetAudience string   `json:"target_audience"`
	KeyFeatures    []string `json:"key_features"`
}

// Client talks to the text generation endpoint.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the given endpoint. An empty baseURL leaves
// the client disabled; Describe then fails fast with ErrUpstream.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

type apiResponse struct {
	Description string `json:"description"`
}

// Describe returns a marketing description for the given request. Transient
// failures are retried with exponential backoff; the request itself is
// idempotent so repeats are harmless.
func (c *Client) Describe(ctx context.Context, req Request) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("%w: no endpoint configured", ErrUpstream)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var description string
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(httpReq)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("server returned %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		var parsed apiResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return fmt.Errorf("unexpected response body: %w", err)
		}
		description = parsed.Description
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return description, nil
}
