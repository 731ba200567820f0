package clock

import "errors"

// Sentinel kinds for clock errors.
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
)
