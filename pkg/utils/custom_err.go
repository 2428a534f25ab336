package utils

import "errors"

var (
	ErrNotEnoughLocations = errors.New("at least two locations are required")
	ErrMissingEndpoints   = errors.New("origin and destination are required")
	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidInput       = errors.New("invalid request format")

	ErrOracleUnavailable    = errors.New("route oracle unavailable")
	ErrOracleAnswerRejected = errors.New("route oracle answer rejected")
)
