package rosterapi

import "errors"

// Sentinel kinds for roster provider errors.
var (
	ErrList        = errors.New("roster list failed")
	ErrRateLimited = errors.New("roster provider rate limited")
)
