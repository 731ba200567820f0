// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All loading functions accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultAddr            = ":9080"
	defaultLocation        = "Sacramento"
	defaultRosterPath      = "assets/players.json"
	defaultWeatherBaseURL  = "https://api.weatherapi.com/v1"
	defaultVideoBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultClockTickMS     = 1000
	defaultVideoMaxResults = 5
	defaultRequestTimeout  = 10_000
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the operational HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Location is the place the weather is fetched for.
	Location string `koanf:"location"`

	// WeatherAPIKey authenticates against the weather provider.
	WeatherAPIKey string `koanf:"weather_api_key"`

	// VideoAPIKey authenticates against the video search provider.
	VideoAPIKey string `koanf:"video_api_key"`

	// WeatherBaseURL and VideoBaseURL point at the upstream providers.
	WeatherBaseURL string `koanf:"weather_base_url"`
	VideoBaseURL   string `koanf:"video_base_url"`

	// RosterPath locates the player dataset written by fetch-players.
	RosterPath string `koanf:"roster_path"`

	// ClockTickMS sets the clock tick period in milliseconds.
	ClockTickMS int `koanf:"clock_tick_ms"`

	// ClockStart optionally sets the clock's start instant. Empty means
	// the process start time. Accepts HH:MM:SS or RFC3339.
	ClockStart string `koanf:"clock_start"`

	// VideoMaxResults caps the video search candidate list.
	VideoMaxResults int `koanf:"video_max_results"`

	// RequestTimeoutMS bounds every upstream HTTP call in milliseconds.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             defaultAddr,
		Location:         defaultLocation,
		WeatherBaseURL:   defaultWeatherBaseURL,
		VideoBaseURL:     defaultVideoBaseURL,
		RosterPath:       defaultRosterPath,
		ClockTickMS:      defaultClockTickMS,
		VideoMaxResults:  defaultVideoMaxResults,
		RequestTimeoutMS: defaultRequestTimeout,
	}
}
