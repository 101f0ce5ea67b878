package domain

import "errors"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrTimeout          = errors.New("request timed out")

	// ErrSerialization reports that a response body could not be encoded.
	ErrSerialization = errors.New("serialization failure")
)
