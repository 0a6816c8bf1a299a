package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for the status codes the pipeline reacts to.
var (
	ErrRateLimited  = errors.New("rate limited by the API")
	ErrUnauthorized = errors.New("API key rejected")
	ErrForbidden    = errors.New("request forbidden")
	ErrNotFound     = errors.New("resource not found")
)

// Client does authenticated requests against the Riot API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient creates the authenticated client.
// Can't do a authenticated request without the API key.
func NewClient(apiKey string, retryDelay time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("missing the API key")
	}

	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryDelay: retryDelay,
	}, nil
}

// GetOnce does a single authenticated GET and decodes the response into out.
// The status codes callers need to react to come back as sentinel errors.
func (c *Client) GetOnce(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("couldn't create the request: %w", err)
	}

	// Add the token from the environment.
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Classify the status before touching the body.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	// Parse the response body.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}

	return nil
}

// GetJSON keeps retrying rate limited responses until the request goes
// through. Every other failure comes back to the caller untouched.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	for {
		err := c.GetOnce(ctx, url, out)
		if !errors.Is(err, ErrRateLimited) {
			return err
		}

		// Wait out the rate limit window before trying again.
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// IsPermanent reports whether the error is a failure that retrying
// can't fix, like a rejected key or a missing resource.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound)
}
