package tfl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Error categories. Callers can distinguish "nothing nearby" (empty result,
// nil error) from "the API is unreachable or returned garbage".
var (
	// ErrBadURL indicates the request URL could not be constructed.
	ErrBadURL = errors.New("invalid request URL")
	// ErrDecode indicates the response body could not be decoded.
	ErrDecode = errors.New("malformed response body")
)

// StatusError indicates a non-2xx response from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// Client issues authenticated GET requests against the TfL Unified API.
type Client struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL and credentials.
func NewClient(baseURL, appID, appKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		appID:      appID,
		appKey:     appKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET request for path with the given query parameters and
// decodes the JSON response into out. The app_id and app_key authentication
// parameters are appended unless the caller already set them.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// buildURL joins base and path, percent-encoding spaces, and injects the
// authentication parameters if absent.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadURL, err)
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if q.Get("app_id") == "" {
		q.Set("app_id", c.appID)
	}
	if q.Get("app_key") == "" {
		q.Set("app_key", c.appKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
