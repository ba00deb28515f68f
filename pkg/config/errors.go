package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures such as a malformed duration.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile is returned when a file passed to WithEnvFiles cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	ErrNilPointer = errors.New("config: nil target")
)
