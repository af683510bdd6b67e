package dto

import "errors"

// Request-shape errors returned by a DTO's Validate method, before a
// request ever reaches a use case. Kept separate from entity errors since
// these describe malformed wire input, not domain-rule violations.
var (
	ErrRequired      = errors.New("required field missing")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrTooLong       = errors.New("field exceeds maximum length")
	ErrEmptyBody     = errors.New("request body required")
)
