package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no session token signing key
	// was supplied by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrUnknownDialect indicates that the configured database dialect
	// is neither "postgres" nor "sqlite".
	ErrUnknownDialect = errors.New("unknown database dialect")
)
