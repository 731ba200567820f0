// Package weather fetches current conditions from the weather provider.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/okian/courtcast/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://api.weatherapi.com/v1"
	defaultTimeout = 10 * time.Second
)

// Report is one successful weather reading, already mapped out of the
// provider's wire shape.
type Report struct {
	TemperatureC float64
	City         string
	Country      string
	Condition    string
	IconURL      string
	WindKPH      float64
}

// apiResponse mirrors the provider's current-conditions JSON.
type apiResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		WindKPH float64 `json:"wind_kph"`
	} `json:"current"`
}

// Client calls the weather provider's current-conditions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a weather client with configuration options.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
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

// Current fetches the current weather for a location. Exactly one
// attempt; any network, status, or decode failure wraps ErrFetch.
func (c *Client) Current(ctx context.Context, location string) (Report, error) {
	start := time.Now()
	defer func() {
		metrics.RecordProviderLatency("weather", float64(time.Since(start).Milliseconds()))
	}()

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", location)
	q.Set("aqi", "no")
	endpoint := c.baseURL + "/current.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordProviderError("weather", "request")
		return Report{}, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError("weather", "network")
		metrics.RecordProviderRequest("weather", "error")
		return Report{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordProviderError("weather", "http_status")
		metrics.RecordProviderRequest("weather", "error")
		return Report{}, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordProviderError("weather", "decode")
		metrics.RecordProviderRequest("weather", "error")
		return Report{}, fmt.Errorf("%w: decode response: %w", ErrFetch, err)
	}

	metrics.RecordProviderRequest("weather", "success")
	return Report{
		TemperatureC: body.Current.TempC,
		City:         body.Location.Name,
		Country:      body.Location.Country,
		Condition:    body.Current.Condition.Text,
		IconURL:      body.Current.Condition.Icon,
		WindKPH:      body.Current.WindKPH,
	}, nil
}
