package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadMethod  = errors.New("method not allowed")
	ErrBadRequest = errors.New("bad request")
)
