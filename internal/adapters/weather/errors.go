package weather

import "errors"

// Sentinel kinds for weather provider errors.
var (
	ErrFetch = errors.New("weather fetch failed")
)
