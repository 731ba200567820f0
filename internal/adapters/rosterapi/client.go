// Package rosterapi fetches player records from the player-profile provider.
package rosterapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://api.balldontlie.io/v1"
	defaultTimeout = 15 * time.Second
	defaultPerPage = 100 // provider maximum; fewest calls per full sync
)

// Page is one page of player records plus the cursor to the next page.
// NextCursor is nil on the final page.
type Page struct {
	Players    []roster.Player
	NextCursor *int
}

// pageResponse mirrors the provider's paginated list JSON.
type pageResponse struct {
	Data []roster.Player `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
		PerPage    int  `json:"per_page"`
	} `json:"meta"`
}

// Client calls the player-profile provider's list endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// NewClient creates a roster client with configuration options.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		perPage: defaultPerPage,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListPage fetches one page of players. Pass a nil cursor for the first
// page; the returned Page carries the cursor for the next call.
// HTTP 429 and 5xx map to ErrRateLimited so callers can back off.
func (c *Client) ListPage(ctx context.Context, cursor *int) (Page, error) {
	start := time.Now()
	defer func() {
		metrics.RecordProviderLatency("roster", float64(time.Since(start).Milliseconds()))
	}()

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.perPage))
	if cursor != nil {
		q.Set("cursor", strconv.Itoa(*cursor))
	}
	endpoint := c.baseURL + "/players?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordProviderError("roster", "request")
		return Page{}, fmt.Errorf("%w: build request: %w", ErrList, err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError("roster", "network")
		metrics.RecordProviderRequest("roster", "error")
		return Page{}, fmt.Errorf("%w: %w", ErrList, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		metrics.RecordProviderError("roster", "rate_limit")
		metrics.RecordProviderRequest("roster", "error")
		return Page{}, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	default:
		metrics.RecordProviderError("roster", "http_status")
		metrics.RecordProviderRequest("roster", "error")
		return Page{}, fmt.Errorf("%w: unexpected status %d", ErrList, resp.StatusCode)
	}

	var body pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordProviderError("roster", "decode")
		metrics.RecordProviderRequest("roster", "error")
		return Page{}, fmt.Errorf("%w: decode response: %w", ErrList, err)
	}

	metrics.RecordProviderRequest("roster", "success")
	metrics.RecordRosterPageFetched()
	return Page{Players: body.Data, NextCursor: body.Meta.NextCursor}, nil
}
