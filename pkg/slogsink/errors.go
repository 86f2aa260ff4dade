package slogsink

import "errors"

var (
	// ErrParseConfig is returned when environment variables cannot be
	// parsed into Config.
	ErrParseConfig = errors.New("slogsink: failed to parse logger config")
	// ErrInvalidLevel is returned for an unknown log level name.
	ErrInvalidLevel = errors.New("slogsink: invalid log level")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("slogsink: invalid log format")
)
