package ratelimit

import "errors"

var (
	ErrRuleNotFound     = errors.New("endpoint rule not found")
	ErrOverrideNotFound = errors.New("user override not found")

	ErrInvalidDefaultRate = errors.New("default_requests_per_minute must be a positive number")
	ErrMissingEndpoints   = errors.New("endpoints section is required")
	ErrNonPositiveRate    = errors.New("requests_per_minute must be a positive integer")
	ErrNegativeBurst      = errors.New("burst_size must not be negative")
	ErrEmptyPath          = errors.New("endpoint path must not be empty")
	ErrEmptyMethod        = errors.New("method must not be empty")
	ErrEmptyUserID        = errors.New("user id must not be empty")
)
