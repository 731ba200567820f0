// Package clock holds the widget's wall clock state.
//
// The clock is deliberately tolerant: ticking or formatting before Start
// is a no-op, so the presenter can wire the tick loop without ordering
// constraints against the fetch sequence.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// Accepted layouts for Start, tried in order.
var startLayouts = []string{ //nolint:gochecknoglobals // package-scoped parse table
	"15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// State holds a mutable point in time advanced one second per tick.
// The tick loop writes while other goroutines read, so access is locked.
type State struct {
	mu      sync.Mutex
	current time.Time
	started bool
}

// New returns an unstarted clock.
func New() *State {
	return &State{}
}

// Start parses value and sets the current instant.
// Returns ErrInvalidTimeFormat when value matches no accepted layout.
func (s *State) Start(value string) error {
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			s.StartAt(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
}

// StartAt sets the current instant directly.
func (s *State) StartAt(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t
	s.started = true
}

// Started reports whether the clock has been initialized.
func (s *State) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Tick advances the clock by exactly one second. No-op when unstarted.
func (s *State) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.current = s.current.Add(time.Second)
}

// Format renders the current instant as zero-padded 24h HH:MM:SS.
// Returns the empty string when unstarted.
func (s *State) Format() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ""
	}
	return s.current.Format("15:04:05")
}
