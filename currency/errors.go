package currency

import "errors"

// ErrInvalidAmount is returned when an amount is negative or cannot be read as a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrMagnitudeOverflow is returned when an amount is larger than MaxCents.
var ErrMagnitudeOverflow = errors.New("amount too large")
