package app

import (
	"math/rand"
	"time"

	"github.com/okian/courtcast/pkg/logger"
)

// Option applies a configuration option to the Presenter.
type Option func(*Presenter)

// WithLocation sets the location the startup sequence fetches for.
func WithLocation(location string) Option {
	return func(p *Presenter) {
		if location != "" {
			p.location = location
		}
	}
}

// WithTickPeriod sets the clock tick period.
func WithTickPeriod(period time.Duration) Option {
	return func(p *Presenter) {
		if period > 0 {
			p.tickPeriod = period
		}
	}
}

// WithClockStart sets an explicit clock start value. Empty keeps the
// default of the process start time.
func WithClockStart(value string) Option {
	return func(p *Presenter) {
		p.clockStart = value
	}
}

// WithRand sets the random source used for player and video selection.
func WithRand(rng *rand.Rand) Option {
	return func(p *Presenter) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// WithLogger sets a custom logger for the presenter.
func WithLogger(l logger.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}
