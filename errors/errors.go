package errors

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrMissingTTL      = errors.New("missing ttl for category")
	ErrInvalidTTL      = errors.New("ttl must be positive")
	ErrUnknownCategory = errors.New("unknown category")
)
