package domain

import "errors"

// Sentinel error kinds surfaced by input parsing and validation.
// Callers classify failures with errors.Is.
var (
	ErrUnknownFrequency = errors.New("unknown payment frequency")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
)
