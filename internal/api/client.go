package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the workout data endpoint used when none is configured.
	DefaultEndpoint = "https://workouts.example.com/api/workouts"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client fetches workouts from the backend.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new workout client for the given endpoint.
// An empty endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetWorkouts performs a one-shot GET of the workout list.
// Cancelling ctx aborts the request; the returned error then satisfies IsCanceled.
func (c *Client) GetWorkouts(ctx context.Context) ([]Workout, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	var workouts []Workout
	if err := json.Unmarshal(respBody, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	return workouts, nil
}
