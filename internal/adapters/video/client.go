// Package video searches the video provider for highlight clips.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/courtcast/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultTimeout    = 10 * time.Second
	defaultMaxResults = 5
)

// searchResponse mirrors the provider's search JSON; only video ids are kept.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// Client calls the video provider's search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// NewClient creates a video search client with configuration options.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		maxResults: defaultMaxResults,
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

// Search returns video ids ranked by the provider for a free-text query.
// An empty result list is not an error; any network, status, or decode
// failure wraps ErrSearch. Exactly one attempt.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	start := time.Now()
	defer func() {
		metrics.RecordProviderLatency("video", float64(time.Since(start).Milliseconds()))
	}()

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(c.maxResults))
	q.Set("q", query)
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordProviderError("video", "request")
		return nil, fmt.Errorf("%w: build request: %w", ErrSearch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError("video", "network")
		metrics.RecordProviderRequest("video", "error")
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordProviderError("video", "http_status")
		metrics.RecordProviderRequest("video", "error")
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSearch, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordProviderError("video", "decode")
		metrics.RecordProviderRequest("video", "error")
		return nil, fmt.Errorf("%w: decode response: %w", ErrSearch, err)
	}

	ids := make([]string, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}

	metrics.RecordProviderRequest("video", "success")
	return ids, nil
}
