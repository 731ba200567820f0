package video

import "errors"

// Sentinel kinds for video provider errors.
var (
	ErrSearch = errors.New("video search failed")
)
