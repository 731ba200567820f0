package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNoMatchingPlayer = errors.New("no matching player")
	ErrInvalidDataset   = errors.New("invalid player dataset")
)
