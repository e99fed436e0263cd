package strfmt

import "errors"

var (
	// ErrEmptyInput is returned when an operation requires a non-empty string.
	ErrEmptyInput = errors.New("input string cannot be empty")

	// ErrInvalidParameter is returned when a length or count parameter is negative.
	ErrInvalidParameter = errors.New("length parameters must be non-negative")
)
