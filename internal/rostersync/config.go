package rostersync

import "time"

// Default sync configuration constants.
const (
	defaultPerPage        = 100
	defaultMinRequestGap  = 12 * time.Second // 5 requests per minute
	defaultMaxRetries     = 5
	defaultBackoffBase    = time.Second
	defaultMaxEmptyStreak = 5
	defaultMaxBackoff     = 32 * time.Second
)

// Config controls a roster sync run.
type Config struct {
	// APIKey authenticates against the player-profile provider.
	APIKey string

	// BaseURL overrides the provider endpoint (tests).
	BaseURL string

	// OutputPath is where the final dataset JSON is written.
	OutputPath string

	// PerPage is the page size requested from the provider.
	PerPage int

	// MinRequestGap spaces out requests to respect the provider's
	// rate limit (default 12s, i.e. 5 requests per minute).
	MinRequestGap time.Duration

	// MaxRetries bounds consecutive retries on transient failures.
	MaxRetries int

	// RetryBackoffBase is the first retry delay; it doubles per attempt
	// up to a fixed cap.
	RetryBackoffBase time.Duration

	// MaxEmptyStreak stops the run after this many consecutive empty
	// pages, in case the provider keeps serving cursors.
	MaxEmptyStreak int

	// Fresh discards any existing checkpoint and starts over.
	Fresh bool
}

// withDefaults fills zero fields with package defaults.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.PerPage <= 0 {
		out.PerPage = defaultPerPage
	}
	if out.MinRequestGap <= 0 {
		out.MinRequestGap = defaultMinRequestGap
	}
	if out.MaxRetries <= 0 {
		out.MaxRetries = defaultMaxRetries
	}
	if out.RetryBackoffBase <= 0 {
		out.RetryBackoffBase = defaultBackoffBase
	}
	if out.MaxEmptyStreak <= 0 {
		out.MaxEmptyStreak = defaultMaxEmptyStreak
	}
	return &out
}
