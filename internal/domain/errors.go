package domain

import "errors"

// Matching-time conditions. These are non-fatal: the engine skips the
// affected candidate pairing and keeps going.
var (
	ErrMissingClient     = errors.New("client not found")
	ErrInsufficientCash  = errors.New("insufficient cash balance")
	ErrInsufficientAsset = errors.New("insufficient asset balance")
)
